// Package compose implements the tree-to-tree transformation from the
// markdown AST to the WordprocessingML object model.
//
// Two layers: the inline formatter flattens inline nodes into styled runs
// under an inherited formatting context, and the block composer walks the
// block sequence, recursing into containers and threading a list nesting
// level. Both layers are total over the node space: unrecognized shapes
// recurse or pass through rather than erroring.
package compose

import (
	"strings"

	"github.com/alnah/go-md2docx/internal/docmodel"
	"github.com/alnah/go-md2docx/internal/mdast"
)

// Spacing and indentation constants in twips.
const (
	headingSpacingBefore  = 240
	headingSpacingAfter   = 120
	paragraphSpacingAfter = 120
	ruleSpacing           = 240
	blockquoteIndent      = 720
	maxHeadingLevel       = 6
)

// Task-list checkbox prefixes.
const (
	checkedPrefix   = "☑ "
	uncheckedPrefix = "☐ "
)

// Blocks converts an ordered block node sequence into an ordered sequence
// of block elements. level is the current list nesting level; top-level
// callers pass 0.
func Blocks(nodes []*mdast.Node, level int) []docmodel.Block {
	var out []docmodel.Block
	for _, n := range nodes {
		out = append(out, composeBlock(n, level)...)
	}
	return out
}

// composeBlock dispatches one block node. Unrecognized parents recurse at
// the unchanged level and splice their result in place; unrecognized
// leaves with a raw value become a plain paragraph.
func composeBlock(n *mdast.Node, level int) []docmodel.Block {
	switch n.Kind {
	case mdast.KindHeading:
		return []docmodel.Block{composeHeading(n)}

	case mdast.KindParagraph:
		p := &docmodel.Paragraph{
			Content:      inlineContent(n.Children, Context{}),
			SpacingAfter: paragraphSpacingAfter,
		}
		return []docmodel.Block{p}

	case mdast.KindBlockquote:
		return composeBlockquote(n, level)

	case mdast.KindList:
		return composeList(n, level)

	case mdast.KindCode:
		return composeCode(n)

	case mdast.KindTable:
		return composeTable(n)

	case mdast.KindThematicBreak:
		// The only representation of a horizontal rule in the target
		// model: an empty paragraph with a bottom border and a
		// full-width right tab stop.
		p := &docmodel.Paragraph{
			BottomBorder:  true,
			RightTabStop:  true,
			SpacingBefore: ruleSpacing,
			SpacingAfter:  ruleSpacing,
		}
		return []docmodel.Block{p}

	default:
		if len(n.Children) > 0 {
			return Blocks(n.Children, level)
		}
		if n.Value != "" {
			p := &docmodel.Paragraph{SpacingAfter: paragraphSpacingAfter}
			p.AppendRun(docmodel.Run{Text: n.Value})
			return []docmodel.Block{p}
		}
		return nil
	}
}

func composeHeading(n *mdast.Node) *docmodel.Paragraph {
	depth := n.Depth
	if depth < 1 {
		depth = 1
	}
	if depth > maxHeadingLevel {
		depth = maxHeadingLevel
	}
	return &docmodel.Paragraph{
		Content:       inlineContent(n.Children, Context{}),
		HeadingLevel:  depth,
		SpacingBefore: headingSpacingBefore,
		SpacingAfter:  headingSpacingAfter,
	}
}

// composeBlockquote composes the children independently, then decorates
// every resulting paragraph with an indent and a thin left border. Tables
// pass through unmodified: the border decoration is paragraph-only.
func composeBlockquote(n *mdast.Node, level int) []docmodel.Block {
	inner := Blocks(n.Children, level)
	for _, b := range inner {
		if p, ok := b.(*docmodel.Paragraph); ok {
			p.IndentLeft += blockquoteIndent
			p.LeftBorder = true
		}
	}
	return inner
}

// composeList emits one numbered paragraph per paragraph-bearing item
// line. A nested list recurses one level deeper; level is clamped to the
// deepest defined scheme level rather than cycling.
func composeList(n *mdast.Node, level int) []docmodel.Block {
	scheme := docmodel.SchemeBullet
	if n.Ordered {
		scheme = docmodel.SchemeOrdered
	}

	var out []docmodel.Block
	for _, item := range n.Children {
		if item.Kind != mdast.KindListItem {
			out = append(out, composeBlock(item, level)...)
			continue
		}
		out = append(out, composeListItem(item, scheme, level)...)
	}
	return out
}

func composeListItem(item *mdast.Node, scheme string, level int) []docmodel.Block {
	prefix := checkboxPrefix(item.Checked)
	firstParagraph := true

	var out []docmodel.Block
	for _, child := range item.Children {
		switch child.Kind {
		case mdast.KindList:
			out = append(out, composeList(child, level+1)...)

		case mdast.KindParagraph:
			p := &docmodel.Paragraph{
				List: &docmodel.ListRef{
					Scheme: scheme,
					Level:  docmodel.ClampLevel(level),
				},
			}
			if firstParagraph && prefix != "" {
				p.AppendRun(docmodel.Run{Text: prefix})
			}
			p.Content = append(p.Content, inlineContent(child.Children, Context{})...)
			out = append(out, p)
			firstParagraph = false

		default:
			out = append(out, composeBlock(child, level)...)
		}
	}
	return out
}

func checkboxPrefix(checked *bool) string {
	switch {
	case checked == nil:
		return ""
	case *checked:
		return checkedPrefix
	default:
		return uncheckedPrefix
	}
}

// composeCode emits one shaded monospace paragraph per source line. Blank
// lines become a single space so the shading stays visible. A trailing
// unshaded spacer separates the block from following content.
func composeCode(n *mdast.Node) []docmodel.Block {
	var out []docmodel.Block
	for _, line := range strings.Split(n.Value, "\n") {
		if line == "" {
			line = " "
		}
		p := &docmodel.Paragraph{Shaded: true}
		p.AppendRun(docmodel.Run{Text: line, Mono: true})
		out = append(out, p)
	}
	out = append(out, &docmodel.Paragraph{})
	return out
}

// composeTable renders each cell's inline content into one paragraph. Row
// index 0 is the header row: forced bold here, shaded by the packer.
func composeTable(n *mdast.Node) []docmodel.Block {
	table := &docmodel.Table{}
	for _, rowNode := range n.Children {
		if rowNode.Kind != mdast.KindTableRow {
			continue
		}
		header := len(table.Rows) == 0
		row := docmodel.Row{Header: header}
		for _, cellNode := range rowNode.Children {
			if cellNode.Kind != mdast.KindTableCell {
				continue
			}
			p := &docmodel.Paragraph{
				Content: inlineContent(cellNode.Children, Context{}),
			}
			if header {
				forceBold(p)
			}
			row.Cells = append(row.Cells, docmodel.Cell{
				Paragraphs: []*docmodel.Paragraph{p},
			})
		}
		table.Rows = append(table.Rows, row)
	}
	return []docmodel.Block{table, &docmodel.Paragraph{}}
}

func forceBold(p *docmodel.Paragraph) {
	for i, in := range p.Content {
		switch v := in.(type) {
		case docmodel.Run:
			v.Bold = true
			p.Content[i] = v
		case docmodel.Hyperlink:
			for j := range v.Runs {
				v.Runs[j].Bold = true
			}
			p.Content[i] = v
		}
	}
}

// inlineContent builds a paragraph's inline members. Link children are
// intercepted here rather than in the inline formatter: their flattened
// runs are restyled with the hyperlink decoration and wrapped in a
// hyperlink group holding the target URL. Everything else flattens to
// plain runs.
func inlineContent(nodes []*mdast.Node, ctx Context) []docmodel.Inline {
	var content []docmodel.Inline
	for _, n := range nodes {
		if n.Kind == mdast.KindLink {
			runs := InlineAll(n.Children, ctx)
			for i := range runs {
				runs[i].Color = HyperlinkColor
				runs[i].Underline = true
			}
			content = append(content, docmodel.Hyperlink{URL: n.URL, Runs: runs})
			continue
		}
		for _, r := range Inline(n, ctx) {
			content = append(content, r)
		}
	}
	return content
}
