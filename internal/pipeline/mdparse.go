package pipeline

import (
	"context"
	"strings"

	"github.com/alnah/go-md2docx/internal/mdast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser abstracts markdown parsing into the project AST.
type MarkdownParser interface {
	ParseMarkdown(ctx context.Context, content string) ([]*mdast.Node, error)
}

// GoldmarkParser parses markdown using goldmark (pure Go, GFM dialect) and
// normalizes the goldmark tree into mdast block nodes.
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewGoldmarkParser creates a GoldmarkParser with GFM extensions.
func NewGoldmarkParser() *GoldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
	)
	return &GoldmarkParser{md: md}
}

// ParseMarkdown parses markdown content into an ordered block node
// sequence. Supports context cancellation via goroutine + select pattern
// since goldmark doesn't natively support context.
func (p *GoldmarkParser) ParseMarkdown(ctx context.Context, content string) ([]*mdast.Node, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan []*mdast.Node, 1)

	go func() {
		source := []byte(content)
		doc := p.md.Parser().Parse(text.NewReader(source))
		done <- convertSiblings(doc.FirstChild(), source)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case nodes := <-done:
		return nodes, nil
	}
}

// convertSiblings converts a goldmark sibling chain in document order.
func convertSiblings(first ast.Node, source []byte) []*mdast.Node {
	var out []*mdast.Node
	for c := first; c != nil; c = c.NextSibling() {
		out = append(out, convertNode(c, source)...)
	}
	return out
}

// convertNode converts one goldmark block-level node. Unrecognized nodes
// become a generic parent so downstream consumers can still recurse.
func convertNode(n ast.Node, source []byte) []*mdast.Node {
	switch v := n.(type) {
	case *ast.Heading:
		return one(&mdast.Node{
			Kind:     mdast.KindHeading,
			Depth:    v.Level,
			Children: convertInlines(n, source),
		})

	case *ast.Paragraph:
		return one(&mdast.Node{
			Kind:     mdast.KindParagraph,
			Children: convertInlines(n, source),
		})

	case *ast.TextBlock:
		// Tight list items carry text blocks; downstream they behave
		// like paragraphs.
		return one(&mdast.Node{
			Kind:     mdast.KindParagraph,
			Children: convertInlines(n, source),
		})

	case *ast.Blockquote:
		return one(&mdast.Node{
			Kind:     mdast.KindBlockquote,
			Children: convertSiblings(n.FirstChild(), source),
		})

	case *ast.List:
		return one(&mdast.Node{
			Kind:     mdast.KindList,
			Ordered:  v.IsOrdered(),
			Start:    v.Start,
			Children: convertSiblings(n.FirstChild(), source),
		})

	case *ast.ListItem:
		item := &mdast.Node{Kind: mdast.KindListItem}
		if cb := taskCheckBox(n); cb != nil {
			checked := cb.IsChecked
			item.Checked = &checked
		}
		item.Children = convertSiblings(n.FirstChild(), source)
		return one(item)

	case *ast.FencedCodeBlock:
		return one(&mdast.Node{
			Kind:  mdast.KindCode,
			Lang:  string(v.Language(source)),
			Value: blockLines(n, source),
		})

	case *ast.CodeBlock:
		return one(&mdast.Node{
			Kind:  mdast.KindCode,
			Value: blockLines(n, source),
		})

	case *ast.ThematicBreak:
		return one(&mdast.Node{Kind: mdast.KindThematicBreak})

	case *ast.HTMLBlock:
		return one(&mdast.Node{
			Kind:  mdast.KindHTML,
			Value: htmlBlockText(v, source),
		})

	case *east.Table:
		return one(&mdast.Node{
			Kind:     mdast.KindTable,
			Align:    convertAlignments(v.Alignments),
			Children: convertSiblings(n.FirstChild(), source),
		})

	case *east.TableHeader:
		return one(&mdast.Node{
			Kind:     mdast.KindTableRow,
			Children: convertSiblings(n.FirstChild(), source),
		})

	case *east.TableRow:
		return one(&mdast.Node{
			Kind:     mdast.KindTableRow,
			Children: convertSiblings(n.FirstChild(), source),
		})

	case *east.TableCell:
		return one(&mdast.Node{
			Kind:     mdast.KindTableCell,
			Children: convertInlines(n, source),
		})

	default:
		return one(&mdast.Node{
			Kind:     mdast.KindParent,
			Children: convertSiblings(n.FirstChild(), source),
		})
	}
}

// convertInlines converts a parent's inline children, then pairs raw
// <sup>/<sub> tags into script nodes.
func convertInlines(parent ast.Node, source []byte) []*mdast.Node {
	var out []*mdast.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convertInline(c, source)...)
	}
	return wrapInlineScripts(out)
}

func convertInline(n ast.Node, source []byte) []*mdast.Node {
	switch v := n.(type) {
	case *ast.Text:
		value := string(v.Segment.Value(source))
		if v.HardLineBreak() {
			return []*mdast.Node{
				mdast.NewText(value),
				{Kind: mdast.KindBreak},
			}
		}
		if v.SoftLineBreak() {
			// A soft break joins lines with a space.
			value += " "
		}
		return one(mdast.NewText(value))

	case *ast.String:
		return one(mdast.NewText(string(v.Value)))

	case *ast.CodeSpan:
		return one(&mdast.Node{
			Kind:  mdast.KindInlineCode,
			Value: nodeText(n, source),
		})

	case *ast.Emphasis:
		kind := mdast.KindEmphasis
		if v.Level >= 2 {
			kind = mdast.KindStrong
		}
		return one(&mdast.Node{
			Kind:     kind,
			Children: convertInlines(n, source),
		})

	case *east.Strikethrough:
		return one(&mdast.Node{
			Kind:     mdast.KindDelete,
			Children: convertInlines(n, source),
		})

	case *ast.Link:
		return one(&mdast.Node{
			Kind:     mdast.KindLink,
			URL:      string(v.Destination),
			Children: convertInlines(n, source),
		})

	case *ast.AutoLink:
		return one(&mdast.Node{
			Kind: mdast.KindLink,
			URL:  string(v.URL(source)),
			Children: []*mdast.Node{
				mdast.NewText(string(v.Label(source))),
			},
		})

	case *ast.Image:
		return one(&mdast.Node{
			Kind:  mdast.KindImage,
			URL:   string(v.Destination),
			Value: nodeText(n, source),
		})

	case *ast.RawHTML:
		return one(&mdast.Node{
			Kind:  mdast.KindHTML,
			Value: rawHTMLText(v, source),
		})

	case *east.TaskCheckBox:
		// Consumed by the enclosing list item (see taskCheckBox).
		return nil

	default:
		if n.HasChildren() {
			return one(&mdast.Node{
				Kind:     mdast.KindParent,
				Children: convertInlines(n, source),
			})
		}
		return nil
	}
}

func one(n *mdast.Node) []*mdast.Node {
	return []*mdast.Node{n}
}

// taskCheckBox returns the checkbox of a task-list item, or nil. GFM puts
// the checkbox as the first inline of the item's first text block.
func taskCheckBox(item ast.Node) *east.TaskCheckBox {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	if k := first.Kind(); k != ast.KindTextBlock && k != ast.KindParagraph {
		return nil
	}
	cb, _ := first.FirstChild().(*east.TaskCheckBox)
	return cb
}

// nodeText concatenates the literal text of a node's subtree.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}

// blockLines joins a block node's source lines, trimming the final
// newline so line splitting downstream yields exactly the source lines.
func blockLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func htmlBlockText(n *ast.HTMLBlock, source []byte) string {
	s := blockLines(n, source)
	if n.HasClosure() {
		closure := strings.TrimSuffix(string(n.ClosureLine.Value(source)), "\n")
		if s == "" {
			return closure
		}
		s += "\n" + closure
	}
	return s
}

func rawHTMLText(n *ast.RawHTML, source []byte) string {
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func convertAlignments(aligns []east.Alignment) []mdast.Alignment {
	if len(aligns) == 0 {
		return nil
	}
	out := make([]mdast.Alignment, len(aligns))
	for i, a := range aligns {
		switch a {
		case east.AlignLeft:
			out[i] = mdast.AlignLeft
		case east.AlignCenter:
			out[i] = mdast.AlignCenter
		case east.AlignRight:
			out[i] = mdast.AlignRight
		default:
			out[i] = mdast.AlignNone
		}
	}
	return out
}

// wrapInlineScripts pairs raw <sup>/<sub> tags in a converted sibling
// sequence and wraps the enclosed inlines in script nodes. Unpaired tags
// are left in place and render as literal text.
func wrapInlineScripts(nodes []*mdast.Node) []*mdast.Node {
	out := make([]*mdast.Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		kind, closing, ok := scriptOpenTag(nodes[i])
		if ok {
			if j := findClosingTag(nodes, i+1, closing); j >= 0 {
				out = append(out, &mdast.Node{
					Kind:     kind,
					Children: wrapInlineScripts(nodes[i+1 : j]),
				})
				i = j
				continue
			}
		}
		out = append(out, nodes[i])
	}
	return out
}

func scriptOpenTag(n *mdast.Node) (mdast.Kind, string, bool) {
	if n.Kind != mdast.KindHTML {
		return mdast.KindParent, "", false
	}
	switch strings.ToLower(strings.TrimSpace(n.Value)) {
	case "<sup>":
		return mdast.KindSuperscript, "</sup>", true
	case "<sub>":
		return mdast.KindSubscript, "</sub>", true
	}
	return mdast.KindParent, "", false
}

func findClosingTag(nodes []*mdast.Node, from int, closing string) int {
	for j := from; j < len(nodes); j++ {
		n := nodes[j]
		if n.Kind == mdast.KindHTML && strings.EqualFold(strings.TrimSpace(n.Value), closing) {
			return j
		}
	}
	return -1
}
