package docmodel

import "fmt"

// Scheme names referenced by ListRef.
const (
	SchemeBullet  = "bullet"
	SchemeOrdered = "ordered"
)

// SchemeDepth is the number of nesting levels each scheme defines.
// Deeper lists clamp to the last level.
const SchemeDepth = 9

// Level indentation in twips: each level steps in by one default tab stop,
// with a fixed hanging indent for the marker.
const (
	levelIndentStep = 720
	levelHanging    = 360
)

// LevelFormat is a WordprocessingML numbering format name.
type LevelFormat string

const (
	FormatBullet      LevelFormat = "bullet"
	FormatDecimal     LevelFormat = "decimal"
	FormatLowerLetter LevelFormat = "lowerLetter"
	FormatLowerRoman  LevelFormat = "lowerRoman"
)

// Level is one nesting level of a numbering scheme.
type Level struct {
	Format LevelFormat
	// Text is the marker template: a literal glyph for bullets, a
	// counter placeholder like "%3." for ordered levels.
	Text       string
	IndentLeft int
	Hanging    int
}

// Scheme is a named numbering definition with SchemeDepth levels.
type Scheme struct {
	Name   string
	Levels [SchemeDepth]Level
}

// bulletGlyphs cycle every three levels: disc, circle, square.
var bulletGlyphs = [3]string{"●", "○", "■"}

// orderedFormats cycle every three levels, alternating the suffix
// punctuation between "." and ")".
var orderedFormats = [3]struct {
	format LevelFormat
	suffix string
}{
	{FormatDecimal, "."},
	{FormatLowerLetter, ")"},
	{FormatLowerRoman, "."},
}

// BulletScheme returns the bullet numbering definition. The result is
// identical across calls; callers may treat it as a process-wide constant.
func BulletScheme() Scheme {
	s := Scheme{Name: SchemeBullet}
	for i := range s.Levels {
		s.Levels[i] = Level{
			Format:     FormatBullet,
			Text:       bulletGlyphs[i%3],
			IndentLeft: levelIndentStep * (i + 1),
			Hanging:    levelHanging,
		}
	}
	return s
}

// OrderedScheme returns the ordered numbering definition. The result is
// identical across calls; callers may treat it as a process-wide constant.
func OrderedScheme() Scheme {
	s := Scheme{Name: SchemeOrdered}
	for i := range s.Levels {
		of := orderedFormats[i%3]
		s.Levels[i] = Level{
			Format:     of.format,
			Text:       fmt.Sprintf("%%%d%s", i+1, of.suffix),
			IndentLeft: levelIndentStep * (i + 1),
			Hanging:    levelHanging,
		}
	}
	return s
}

// DefaultNumbering returns both schemes in the order the packer declares
// them: bullet first, ordered second.
func DefaultNumbering() []Scheme {
	return []Scheme{BulletScheme(), OrderedScheme()}
}

// ClampLevel clamps a list nesting level into the defined range.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level >= SchemeDepth {
		return SchemeDepth - 1
	}
	return level
}
