package docmodel

import (
	"fmt"
	"reflect"
	"testing"
)

func TestBulletScheme(t *testing.T) {
	t.Parallel()

	s := BulletScheme()
	if s.Name != SchemeBullet {
		t.Errorf("Name = %q, want %q", s.Name, SchemeBullet)
	}

	wantGlyphs := []string{"●", "○", "■", "●", "○", "■", "●", "○", "■"}
	for i, lvl := range s.Levels {
		if lvl.Format != FormatBullet {
			t.Errorf("level %d: Format = %q", i, lvl.Format)
		}
		if lvl.Text != wantGlyphs[i] {
			t.Errorf("level %d: Text = %q, want %q", i, lvl.Text, wantGlyphs[i])
		}
		if lvl.IndentLeft != levelIndentStep*(i+1) {
			t.Errorf("level %d: IndentLeft = %d, want %d", i, lvl.IndentLeft, levelIndentStep*(i+1))
		}
		if lvl.Hanging != levelHanging {
			t.Errorf("level %d: Hanging = %d, want %d", i, lvl.Hanging, levelHanging)
		}
	}
}

func TestOrderedScheme(t *testing.T) {
	t.Parallel()

	s := OrderedScheme()
	if s.Name != SchemeOrdered {
		t.Errorf("Name = %q, want %q", s.Name, SchemeOrdered)
	}

	wantFormats := []LevelFormat{
		FormatDecimal, FormatLowerLetter, FormatLowerRoman,
		FormatDecimal, FormatLowerLetter, FormatLowerRoman,
		FormatDecimal, FormatLowerLetter, FormatLowerRoman,
	}
	wantSuffixes := []string{".", ")", ".", ".", ")", ".", ".", ")", "."}

	for i, lvl := range s.Levels {
		if lvl.Format != wantFormats[i] {
			t.Errorf("level %d: Format = %q, want %q", i, lvl.Format, wantFormats[i])
		}
		wantText := fmt.Sprintf("%%%d%s", i+1, wantSuffixes[i])
		if lvl.Text != wantText {
			t.Errorf("level %d: Text = %q, want %q", i, lvl.Text, wantText)
		}
		if lvl.IndentLeft != levelIndentStep*(i+1) {
			t.Errorf("level %d: IndentLeft = %d", i, lvl.IndentLeft)
		}
	}
}

// The scheme definitions are fixed: every call must return the same value.
func TestSchemes_StableAcrossCalls(t *testing.T) {
	t.Parallel()

	if !reflect.DeepEqual(BulletScheme(), BulletScheme()) {
		t.Error("BulletScheme() differs across calls")
	}
	if !reflect.DeepEqual(OrderedScheme(), OrderedScheme()) {
		t.Error("OrderedScheme() differs across calls")
	}
}

func TestDefaultNumbering(t *testing.T) {
	t.Parallel()

	schemes := DefaultNumbering()
	if len(schemes) != 2 {
		t.Fatalf("len(schemes) = %d, want 2", len(schemes))
	}
	if schemes[0].Name != SchemeBullet {
		t.Errorf("schemes[0].Name = %q, want %q", schemes[0].Name, SchemeBullet)
	}
	if schemes[1].Name != SchemeOrdered {
		t.Errorf("schemes[1].Name = %q, want %q", schemes[1].Name, SchemeOrdered)
	}
}

func TestClampLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "negative clamps to zero", level: -1, want: 0},
		{name: "zero stays", level: 0, want: 0},
		{name: "mid-range stays", level: 4, want: 4},
		{name: "last level stays", level: SchemeDepth - 1, want: SchemeDepth - 1},
		{name: "at depth clamps to last", level: SchemeDepth, want: SchemeDepth - 1},
		{name: "beyond depth clamps to last", level: SchemeDepth + 10, want: SchemeDepth - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClampLevel(tt.level); got != tt.want {
				t.Errorf("ClampLevel(%d) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}
