// Package docmodel defines the in-memory WordprocessingML object model
// produced by the composer and consumed by the packer.
//
// The model is deliberately writer-oriented and minimal: paragraphs own an
// ordered sequence of inline members (plain runs and hyperlink groups),
// tables own rows of cells of paragraphs, and list membership is expressed
// as a reference into one of the two fixed numbering schemes. Ownership is
// strictly downward; nothing in the model is shared or mutated after
// construction.
package docmodel

// Run is one contiguous span of text with a resolved formatting-flag set.
type Run struct {
	Text string

	Bold        bool
	Italic      bool
	Strike      bool
	Superscript bool
	Subscript   bool

	// Mono marks the run for a fixed-width font (inline code, code blocks).
	Mono bool

	// Color is an RRGGBB hex value; empty means the default text color.
	Color string

	Underline bool

	// Break marks a line-break run. Break runs carry no text.
	Break bool
}

// Hyperlink wraps a group of runs with an external target URL. The target
// format models hyperlinks as a distinct wrapper element, not a run
// attribute, so the wrapper survives into the object model.
type Hyperlink struct {
	URL  string
	Runs []Run
}

// Inline is a paragraph content member: a Run or a Hyperlink.
type Inline interface {
	inline()
}

func (Run) inline()       {}
func (Hyperlink) inline() {}

// ListRef ties a paragraph to a numbering scheme level.
type ListRef struct {
	Scheme string // SchemeBullet or SchemeOrdered
	Level  int    // 0-based nesting level
}

// Paragraph is a block of inline content with optional heading, list and
// visual attributes. All measurements are in twips (1/20 point).
type Paragraph struct {
	Content []Inline

	// HeadingLevel is 1 through 6 for headings, 0 otherwise.
	HeadingLevel int

	// List is non-nil when the paragraph belongs to a list.
	List *ListRef

	IndentLeft    int
	LeftBorder    bool
	BottomBorder  bool
	Shaded        bool
	SpacingBefore int
	SpacingAfter  int

	// RightTabStop adds a full-width right-aligned tab stop; combined
	// with BottomBorder it renders a horizontal rule.
	RightTabStop bool
}

// AppendRun appends a plain run to the paragraph content.
func (p *Paragraph) AppendRun(r Run) {
	p.Content = append(p.Content, r)
}

// Runs returns the paragraph's runs in order, flattening hyperlink groups.
func (p *Paragraph) Runs() []Run {
	var runs []Run
	for _, in := range p.Content {
		switch v := in.(type) {
		case Run:
			runs = append(runs, v)
		case Hyperlink:
			runs = append(runs, v.Runs...)
		}
	}
	return runs
}

// Text returns the concatenated text of all runs, for assertions and
// debugging rather than rendering.
func (p *Paragraph) Text() string {
	var s string
	for _, r := range p.Runs() {
		s += r.Text
	}
	return s
}

// Cell is one table cell holding one or more paragraphs.
type Cell struct {
	Paragraphs []*Paragraph
}

// Row is one table row. Header marks the bold, shaded first row.
type Row struct {
	Cells  []Cell
	Header bool
}

// Table is a block-level table.
type Table struct {
	Rows []Row
}

// Block is a block-level element: *Paragraph or *Table.
type Block interface {
	block()
}

func (*Paragraph) block() {}
func (*Table) block()     {}

// Document is the conversion output handed to the packer: the ordered
// block sequence plus the two fixed numbering schemes.
type Document struct {
	Blocks    []Block
	Numbering []Scheme

	// Title is optional document metadata carried into the package
	// properties part.
	Title string
}
