package md2docx

import (
	"fmt"
	"time"
)

// MaxTitleLength bounds document title metadata.
const MaxTitleLength = 200

// Input contains conversion parameters.
type Input struct {
	Markdown    string // Markdown content (required)
	Title       string // Document title metadata (optional)
	HTMLPreview bool   // Also render an HTML preview of the source
}

// Validate checks that the input is convertible.
func (in Input) Validate() error {
	if in.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if len(in.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTitleTooLong, len(in.Title), MaxTitleLength)
	}
	return nil
}

// ConvertResult holds conversion outputs.
type ConvertResult struct {
	DOCX []byte
	HTML []byte // populated when Input.HTMLPreview is set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	title   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2docx: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithTitle sets the default document title, used when Input.Title is
// empty.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}
