// Package ooxml serializes the document object model into a DOCX package:
// an OPC zip container holding WordprocessingML parts.
//
// The package writes a fixed part layout ([Content_Types].xml, package
// rels, word/document.xml, word/styles.xml, word/numbering.xml, document
// rels, and optional docProps/core.xml), the minimal set standard
// word-processing readers accept.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/alnah/go-md2docx/internal/docmodel"
)

// Page geometry in twips: US Letter with one-inch margins.
const (
	pageWidth  = 12240
	pageHeight = 15840
	pageMargin = 1440

	// fullWidthTabPos is the usable line width, for right-aligned tab
	// stops spanning the page.
	fullWidthTabPos = pageWidth - 2*pageMargin
)

// Fixed visual constants.
const (
	monoFont         = "Consolas"
	codeShadeFill    = "F2F2F2"
	headerShadeFill  = "D9D9D9"
	quoteBorderColor = "A6A6A6"
	tableBorderColor = "auto"
)

// Part names inside the container.
const (
	partContentTypes = "[Content_Types].xml"
	partPackageRels  = "_rels/.rels"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partCoreProps    = "docProps/core.xml"
)

// Pack serializes a document into DOCX bytes.
func Pack(doc *docmodel.Document) ([]byte, error) {
	numIDs := make(map[string]int, len(doc.Numbering))
	for i, scheme := range doc.Numbering {
		numIDs[scheme.Name] = i + 1
	}

	rels := newDocRels()
	content := make([]any, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case *docmodel.Paragraph:
			content = append(content, buildParagraph(v, numIDs, rels))
		case *docmodel.Table:
			content = append(content, buildTable(v, numIDs, rels))
		}
	}

	docPart := document{
		XmlnsW: nsWordprocessingML,
		XmlnsR: nsOfficeRel,
		Body: body{
			Content: content,
			SectPr: sectPr{
				PgSz: pgSz{W: pageWidth, H: pageHeight},
				PgMar: pgMar{
					Top: pageMargin, Right: pageMargin,
					Bottom: pageMargin, Left: pageMargin,
					Header: 720, Footer: 720,
				},
			},
		},
	}

	parts := []struct {
		name string
		part any
	}{
		{partContentTypes, buildContentTypes(doc.Title != "")},
		{partPackageRels, buildPackageRels(doc.Title != "")},
		{partDocument, docPart},
		{partStyles, buildStyles()},
		{partNumbering, buildNumbering(doc.Numbering)},
		{partDocumentRels, rels.part()},
	}
	if doc.Title != "" {
		parts = append(parts, struct {
			name string
			part any
		}{partCoreProps, coreProperties{
			XmlnsCP: nsCoreProps,
			XmlnsDC: nsDublinCore,
			Title:   doc.Title,
		}})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		if err := writePart(zw, p.name, p.part); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

func writePart(zw *zip.Writer, name string, part any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", name, err)
	}
	data, err := xml.Marshal(part)
	if err != nil {
		return fmt.Errorf("marshaling part %s: %w", name, err)
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("writing part %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing part %s: %w", name, err)
	}
	return nil
}

// docRels accumulates document relationships. Styles and numbering hold
// the first two IDs; hyperlink targets are assigned in document order.
type docRels struct {
	rels []relationship
	next int
}

func newDocRels() *docRels {
	return &docRels{
		rels: []relationship{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relTypeNumbering, Target: "numbering.xml"},
		},
		next: 3,
	}
}

func (d *docRels) addHyperlink(url string) string {
	id := fmt.Sprintf("rId%d", d.next)
	d.next++
	d.rels = append(d.rels, relationship{
		ID:         id,
		Type:       relTypeHyperlink,
		Target:     url,
		TargetMode: "External",
	})
	return id
}

func (d *docRels) part() relationships {
	return relationships{Xmlns: nsPackageRel, Rels: d.rels}
}

func buildParagraph(p *docmodel.Paragraph, numIDs map[string]int, rels *docRels) paragraph {
	out := paragraph{Props: buildParaProps(p, numIDs)}
	for _, in := range p.Content {
		switch v := in.(type) {
		case docmodel.Run:
			out.Content = append(out.Content, buildRun(v))
		case docmodel.Hyperlink:
			h := hyperlink{RID: rels.addHyperlink(v.URL)}
			for _, r := range v.Runs {
				h.Runs = append(h.Runs, buildRun(r))
			}
			out.Content = append(out.Content, h)
		}
	}
	return out
}

func buildParaProps(p *docmodel.Paragraph, numIDs map[string]int) *paraProps {
	props := &paraProps{}
	used := false

	if p.HeadingLevel > 0 {
		props.Style = &valAttr{Val: fmt.Sprintf("Heading%d", p.HeadingLevel)}
		used = true
	}
	if p.List != nil {
		props.NumPr = &numPr{
			ILvl:  intVal{Val: p.List.Level},
			NumID: intVal{Val: numIDs[p.List.Scheme]},
		}
		used = true
	}
	if p.LeftBorder || p.BottomBorder {
		borders := &paraBorders{}
		if p.LeftBorder {
			borders.Left = &borderEdge{Val: "single", Size: 12, Space: 4, Color: quoteBorderColor}
		}
		if p.BottomBorder {
			borders.Bottom = &borderEdge{Val: "single", Size: 6, Space: 1, Color: "auto"}
		}
		props.Borders = borders
		used = true
	}
	if p.Shaded {
		props.Shading = &shading{Val: "clear", Fill: codeShadeFill}
		used = true
	}
	if p.RightTabStop {
		props.Tabs = &tabs{Tab: []tabStop{{Val: "right", Pos: fullWidthTabPos}}}
		used = true
	}
	if p.SpacingBefore != 0 || p.SpacingAfter != 0 {
		props.Spacing = &spacing{Before: p.SpacingBefore, After: p.SpacingAfter}
		used = true
	}
	if p.IndentLeft != 0 {
		props.Indent = &indent{Left: p.IndentLeft}
		used = true
	}

	if !used {
		return nil
	}
	return props
}

func buildRun(r docmodel.Run) run {
	if r.Break {
		return run{Break: &struct{}{}}
	}

	props := &runProps{}
	used := false
	if r.Mono {
		props.Fonts = &runFonts{ASCII: monoFont, HAnsi: monoFont}
		used = true
	}
	if r.Bold {
		props.Bold = &struct{}{}
		used = true
	}
	if r.Italic {
		props.Italic = &struct{}{}
		used = true
	}
	if r.Strike {
		props.Strike = &struct{}{}
		used = true
	}
	if r.Color != "" {
		props.Color = &valAttr{Val: r.Color}
		used = true
	}
	if r.Underline {
		props.Underline = &valAttr{Val: "single"}
		used = true
	}
	switch {
	case r.Superscript:
		props.VertAlign = &valAttr{Val: "superscript"}
		used = true
	case r.Subscript:
		props.VertAlign = &valAttr{Val: "subscript"}
		used = true
	}

	out := run{Text: &runText{Space: "preserve", Value: r.Text}}
	if used {
		out.Props = props
	}
	return out
}

func buildTable(t *docmodel.Table, numIDs map[string]int, rels *docRels) table {
	edge := borderEdge{Val: "single", Size: 4, Space: 0, Color: tableBorderColor}
	out := table{
		Props: tblProps{
			Width: tblWidth{W: 0, Type: "auto"},
			Borders: &tblBorders{
				Top: edge, Left: edge, Bottom: edge, Right: edge,
				InsideH: edge, InsideV: edge,
			},
		},
	}
	for _, row := range t.Rows {
		tr := tableRow{}
		for _, cell := range row.Cells {
			tc := tableCell{}
			if row.Header {
				tc.Props = &tcProps{Shading: &shading{Val: "clear", Fill: headerShadeFill}}
			}
			for _, p := range cell.Paragraphs {
				tc.Paragraphs = append(tc.Paragraphs, buildParagraph(p, numIDs, rels))
			}
			// A table cell must contain at least one paragraph.
			if len(tc.Paragraphs) == 0 {
				tc.Paragraphs = []paragraph{{}}
			}
			tr.Cells = append(tr.Cells, tc)
		}
		out.Rows = append(out.Rows, tr)
	}
	return out
}

func buildNumbering(schemes []docmodel.Scheme) numberingPart {
	part := numberingPart{XmlnsW: nsWordprocessingML}
	for i, scheme := range schemes {
		an := abstractNum{ID: i}
		for li, level := range scheme.Levels {
			l := lvl{
				ILvl:    li,
				NumFmt:  valAttr{Val: string(level.Format)},
				LvlText: valAttr{Val: level.Text},
				LvlJc:   valAttr{Val: "left"},
				PPr: lvlPPr{
					Indent: indent{Left: level.IndentLeft, Hanging: level.Hanging},
				},
			}
			if level.Format != docmodel.FormatBullet {
				l.Start = &intVal{Val: 1}
			}
			an.Levels = append(an.Levels, l)
		}
		part.AbstractNums = append(part.AbstractNums, an)
		part.Nums = append(part.Nums, num{ID: i + 1, AbstractNum: intVal{Val: i}})
	}
	return part
}

// headingSizes are half-point font sizes for Heading1 through Heading6.
var headingSizes = [6]int{36, 32, 28, 26, 24, 22}

func buildStyles() stylesPart {
	part := stylesPart{XmlnsW: nsWordprocessingML}
	part.Styles = append(part.Styles, style{
		Type:    "paragraph",
		ID:      "Normal",
		Default: "1",
		Name:    valAttr{Val: "Normal"},
	})
	for i, size := range headingSizes {
		part.Styles = append(part.Styles, style{
			Type:    "paragraph",
			ID:      fmt.Sprintf("Heading%d", i+1),
			Name:    valAttr{Val: fmt.Sprintf("heading %d", i+1)},
			BasedOn: &valAttr{Val: "Normal"},
			Next:    &valAttr{Val: "Normal"},
			RPr: &styleRPr{
				Bold: &struct{}{},
				Size: &valAttr{Val: fmt.Sprintf("%d", size)},
			},
		})
	}
	return part
}

func buildContentTypes(withCoreProps bool) contentTypes {
	ct := contentTypes{
		Xmlns: nsContentTypes,
		Defaults: []ctDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []ctOverride{
			{PartName: "/word/document.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
			{PartName: "/word/numbering.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
		},
	}
	if withCoreProps {
		ct.Overrides = append(ct.Overrides, ctOverride{
			PartName:    "/docProps/core.xml",
			ContentType: "application/vnd.openxmlformats-package.core-properties+xml",
		})
	}
	return ct
}

func buildPackageRels(withCoreProps bool) relationships {
	rels := relationships{
		Xmlns: nsPackageRel,
		Rels: []relationship{
			{ID: "rId1", Type: relTypeOfficeDocument, Target: "word/document.xml"},
		},
	}
	if withCoreProps {
		rels.Rels = append(rels.Rels, relationship{
			ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml",
		})
	}
	return rels
}
