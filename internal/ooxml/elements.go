package ooxml

import "encoding/xml"

// OOXML namespaces and part names.
const (
	nsWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsOfficeRel        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRel       = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes     = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps        = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDublinCore       = "http://purl.org/dc/elements/1.1/"

	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relTypeHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Marshal structs carry literal "w:" prefixes in their tags: encoding/xml
// has no namespace-prefix support on output, and the reader-side element
// vocabulary is fixed, so spelled-out prefixes are the dependable way to
// emit WordprocessingML.

type document struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    body     `xml:"w:body"`
}

type body struct {
	// Content holds paragraph and table elements in document order.
	Content []any
	SectPr  sectPr `xml:"w:sectPr"`
}

type paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *paraProps `xml:"w:pPr,omitempty"`
	// Content holds run and hyperlink elements in document order.
	Content []any
}

// paraProps fields follow the CT_PPr schema sequence.
type paraProps struct {
	Style   *valAttr     `xml:"w:pStyle,omitempty"`
	NumPr   *numPr       `xml:"w:numPr,omitempty"`
	Borders *paraBorders `xml:"w:pBdr,omitempty"`
	Shading *shading     `xml:"w:shd,omitempty"`
	Tabs    *tabs        `xml:"w:tabs,omitempty"`
	Spacing *spacing     `xml:"w:spacing,omitempty"`
	Indent  *indent      `xml:"w:ind,omitempty"`
}

type valAttr struct {
	Val string `xml:"w:val,attr"`
}

type intVal struct {
	Val int `xml:"w:val,attr"`
}

type numPr struct {
	ILvl  intVal `xml:"w:ilvl"`
	NumID intVal `xml:"w:numId"`
}

type borderEdge struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type paraBorders struct {
	Left   *borderEdge `xml:"w:left,omitempty"`
	Bottom *borderEdge `xml:"w:bottom,omitempty"`
}

type shading struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr"`
}

type spacing struct {
	Before int `xml:"w:before,attr,omitempty"`
	After  int `xml:"w:after,attr,omitempty"`
}

type indent struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr,omitempty"`
}

type tabs struct {
	Tab []tabStop `xml:"w:tab"`
}

type tabStop struct {
	Val string `xml:"w:val,attr"`
	Pos int    `xml:"w:pos,attr"`
}

type run struct {
	XMLName xml.Name  `xml:"w:r"`
	Props   *runProps `xml:"w:rPr,omitempty"`
	Break   *struct{} `xml:"w:br,omitempty"`
	Text    *runText  `xml:"w:t,omitempty"`
}

type runText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

// runProps fields follow the CT_RPr schema sequence.
type runProps struct {
	Fonts     *runFonts `xml:"w:rFonts,omitempty"`
	Bold      *struct{} `xml:"w:b,omitempty"`
	Italic    *struct{} `xml:"w:i,omitempty"`
	Strike    *struct{} `xml:"w:strike,omitempty"`
	Color     *valAttr  `xml:"w:color,omitempty"`
	Underline *valAttr  `xml:"w:u,omitempty"`
	VertAlign *valAttr  `xml:"w:vertAlign,omitempty"`
}

type runFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type hyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	RID     string   `xml:"r:id,attr"`
	Runs    []run    `xml:"w:r"`
}

type table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tblProps   `xml:"w:tblPr"`
	Rows    []tableRow `xml:"w:tr"`
}

type tblProps struct {
	Width   tblWidth    `xml:"w:tblW"`
	Borders *tblBorders `xml:"w:tblBorders,omitempty"`
}

type tblWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tblBorders struct {
	Top     borderEdge `xml:"w:top"`
	Left    borderEdge `xml:"w:left"`
	Bottom  borderEdge `xml:"w:bottom"`
	Right   borderEdge `xml:"w:right"`
	InsideH borderEdge `xml:"w:insideH"`
	InsideV borderEdge `xml:"w:insideV"`
}

type tableRow struct {
	XMLName xml.Name    `xml:"w:tr"`
	Cells   []tableCell `xml:"w:tc"`
}

type tableCell struct {
	XMLName    xml.Name    `xml:"w:tc"`
	Props      *tcProps    `xml:"w:tcPr,omitempty"`
	Paragraphs []paragraph `xml:"w:p"`
}

type tcProps struct {
	Shading *shading `xml:"w:shd,omitempty"`
}

type sectPr struct {
	PgSz  pgSz  `xml:"w:pgSz"`
	PgMar pgMar `xml:"w:pgMar"`
}

type pgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// numbering.xml

type numberingPart struct {
	XMLName      xml.Name      `xml:"w:numbering"`
	XmlnsW       string        `xml:"xmlns:w,attr"`
	AbstractNums []abstractNum `xml:"w:abstractNum"`
	Nums         []num         `xml:"w:num"`
}

type abstractNum struct {
	ID     int   `xml:"w:abstractNumId,attr"`
	Levels []lvl `xml:"w:lvl"`
}

type lvl struct {
	ILvl    int     `xml:"w:ilvl,attr"`
	Start   *intVal `xml:"w:start,omitempty"`
	NumFmt  valAttr `xml:"w:numFmt"`
	LvlText valAttr `xml:"w:lvlText"`
	LvlJc   valAttr `xml:"w:lvlJc"`
	PPr     lvlPPr  `xml:"w:pPr"`
}

type lvlPPr struct {
	Indent indent `xml:"w:ind"`
}

type num struct {
	ID          int    `xml:"w:numId,attr"`
	AbstractNum intVal `xml:"w:abstractNumId"`
}

// styles.xml

type stylesPart struct {
	XMLName xml.Name `xml:"w:styles"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Styles  []style  `xml:"w:style"`
}

type style struct {
	Type    string     `xml:"w:type,attr"`
	ID      string     `xml:"w:styleId,attr"`
	Default string     `xml:"w:default,attr,omitempty"`
	Name    valAttr    `xml:"w:name"`
	BasedOn *valAttr   `xml:"w:basedOn,omitempty"`
	Next    *valAttr   `xml:"w:next,omitempty"`
	PPr     *paraProps `xml:"w:pPr,omitempty"`
	RPr     *styleRPr  `xml:"w:rPr,omitempty"`
}

type styleRPr struct {
	Bold *struct{} `xml:"w:b,omitempty"`
	Size *valAttr  `xml:"w:sz,omitempty"`
}

// package plumbing parts

type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Rels    []relationship `xml:"Relationship"`
}

type relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

type contentTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Xmlns     string       `xml:"xmlns,attr"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type coreProperties struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCP string   `xml:"xmlns:cp,attr"`
	XmlnsDC string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title"`
}
