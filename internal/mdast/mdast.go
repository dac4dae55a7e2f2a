// Package mdast defines the markdown AST consumed by the composer.
//
// The tree mirrors the shape produced by CommonMark+GFM parsers: container
// nodes own an ordered child sequence (document reading order), leaf nodes
// carry a literal string value. The composer treats this tree as read-only
// input and must stay total over it, so Kind is an open enum: producers may
// emit kinds the composer does not recognize, and KindParent acts as the
// generic container fallback.
package mdast

// Kind tags a Node variant.
type Kind int

const (
	// KindParent is a generic container with no block/inline semantics of
	// its own. Consumers recurse into its children.
	KindParent Kind = iota

	// Block kinds.
	KindHeading
	KindParagraph
	KindBlockquote
	KindList
	KindListItem
	KindCode
	KindThematicBreak
	KindTable
	KindTableRow
	KindTableCell

	// Inline kinds.
	KindText
	KindEmphasis
	KindStrong
	KindDelete
	KindInlineCode
	KindLink
	KindImage
	KindBreak
	KindSuperscript
	KindSubscript

	// KindHTML holds raw HTML passed through by the parser. Consumers
	// render its value as literal text.
	KindHTML
)

var kindNames = map[Kind]string{
	KindParent:        "parent",
	KindHeading:       "heading",
	KindParagraph:     "paragraph",
	KindBlockquote:    "blockquote",
	KindList:          "list",
	KindListItem:      "listItem",
	KindCode:          "code",
	KindThematicBreak: "thematicBreak",
	KindTable:         "table",
	KindTableRow:      "tableRow",
	KindTableCell:     "tableCell",
	KindText:          "text",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindDelete:        "delete",
	KindInlineCode:    "inlineCode",
	KindLink:          "link",
	KindImage:         "image",
	KindBreak:         "break",
	KindSuperscript:   "superscript",
	KindSubscript:     "subscript",
	KindHTML:          "html",
}

// String returns the mdast-style name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Alignment is a table column alignment hint.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Node is one markdown AST node. Which fields are meaningful depends on
// Kind; unused fields stay zero.
type Node struct {
	Kind     Kind
	Children []*Node

	// Value is the literal payload of leaf nodes (Text, InlineCode, Code,
	// HTML) and the alt text of Image nodes.
	Value string

	// Depth is the heading level, 1 through 6.
	Depth int

	// Ordered and Start describe a List node. Start is the first item
	// number of an ordered list (0 means unset, renderers assume 1).
	Ordered bool
	Start   int

	// Checked is the task-list state of a ListItem: nil for a plain item,
	// otherwise the checkbox state.
	Checked *bool

	// URL is the destination of Link and Image nodes.
	URL string

	// Lang is the info-string language of a Code node.
	Lang string

	// Align holds per-column alignment hints of a Table node.
	Align []Alignment
}

// NewParent returns a container node of the given kind.
func NewParent(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewText returns a Text node with the given literal value.
func NewText(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}
