package md2docx

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2docx/internal/docmodel"
	"github.com/alnah/go-md2docx/internal/ooxml"
)

// docxPacker abstracts serializing the document object model into DOCX
// bytes, allowing tests to inject fakes.
type docxPacker interface {
	PackDOCX(ctx context.Context, doc *docmodel.Document) ([]byte, error)
}

// ooxmlPacker packs documents via the internal OOXML writer.
type ooxmlPacker struct{}

// PackDOCX serializes doc into a DOCX package. Packing is in-memory and
// fast; the context is only consulted up front.
func (p *ooxmlPacker) PackDOCX(ctx context.Context, doc *docmodel.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := ooxml.Pack(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPack, err)
	}
	return data, nil
}
