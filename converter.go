package md2docx

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2docx/internal/compose"
	"github.com/alnah/go-md2docx/internal/docmodel"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.MarkdownParser       = (*pipeline.GoldmarkParser)(nil)
	_ pipeline.HTMLPreviewer        = (*pipeline.GoldmarkPreviewer)(nil)
	_ docxPacker                    = (*ooxmlPacker)(nil)
)

// Converter orchestrates the markdown-to-DOCX conversion pipeline.
// Create with NewConverter and use Convert for conversion. A Converter
// holds no per-call state and is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
	parser       pipeline.MarkdownParser
	previewer    pipeline.HTMLPreviewer
	packer       docxPacker
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithTitle).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		parser:       pipeline.NewGoldmarkParser(),
		previewer:    pipeline.NewGoldmarkPreviewer(),
		packer:       &ooxmlPacker{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert runs the full pipeline and returns the result containing the
// DOCX bytes and, if requested, an HTML preview.
// The context is used for cancellation; the configured timeout caps the
// whole call. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Parse into the AST
	nodes, err := c.parser.ParseMarkdown(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// Compose the document object model. The numbering schemes are fixed
	// definitions, identical for every document.
	doc := &docmodel.Document{
		Blocks:    compose.Blocks(nodes, 0),
		Numbering: docmodel.DefaultNumbering(),
		Title:     c.resolveTitle(input),
	}

	// Pack into the DOCX container
	docxBytes, err := c.packer.PackDOCX(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("packing DOCX: %w", err)
	}

	res := &ConvertResult{DOCX: docxBytes}

	// Render the HTML preview (if requested)
	if input.HTMLPreview {
		htmlContent, err := c.previewer.PreviewHTML(ctx, mdContent)
		if err != nil {
			return nil, fmt.Errorf("rendering HTML preview: %w", err)
		}
		res.HTML = []byte(htmlContent)
	}

	return res, nil
}

// resolveTitle prefers the per-call title over the configured default.
func (c *Converter) resolveTitle(input Input) string {
	if input.Title != "" {
		return input.Title
	}
	return c.cfg.title
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have their input validated earlier at config load
// time. Both paths converge here.
func (c *Converter) validateInput(input Input) error {
	return input.Validate()
}
