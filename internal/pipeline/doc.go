// Package pipeline implements the markdown front half of the conversion
// pipeline.
//
// This package handles the stages that run before composition:
//   - Markdown preprocessing (line normalization, blank-line compression)
//   - Markdown parsing via Goldmark into the project AST (mdast)
//   - Optional HTML preview rendering via Goldmark with syntax highlighting
//
// The AST-to-document transformation lives in internal/compose and DOCX
// packaging in the root md2docx package. This separation keeps the
// pipeline focused on source text handling, while composition and
// packaging own document structure and the container format.
package pipeline
