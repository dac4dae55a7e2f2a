// Package md2docx converts Markdown documents to DOCX.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2docx.NewConverter()
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// The result contains the DOCX bytes (result.DOCX) and, when
// Input.HTMLPreview is set, a standalone HTML rendering of the source
// (result.HTML) for inspection.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, blank-line compression)
//  2. Markdown parsing via Goldmark (GFM) into a typed AST
//  3. AST-to-document composition (paragraphs, runs, tables, numbering)
//  4. DOCX packaging (OPC zip with WordprocessingML parts)
//
// Composition preserves semantic formatting: headings, emphasis nesting,
// strikethrough, inline code, links, image placeholders, nested and task
// lists, tables with styled header rows, shaded code blocks, blockquote
// borders, and horizontal rules. Layout fidelity is semantic, not
// pixel-perfect.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2docx.NewConverter(
//	    md2docx.WithTimeout(2 * time.Minute),
//	    md2docx.WithTitle("Report"),
//	)
//
// # Concurrency
//
// A Converter is stateless between calls and safe for concurrent use;
// each Convert call builds its own document tree.
package md2docx
