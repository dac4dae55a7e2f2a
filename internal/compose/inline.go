package compose

import (
	"github.com/alnah/go-md2docx/internal/docmodel"
	"github.com/alnah/go-md2docx/internal/mdast"
)

// Fixed run decorations. Colors are RRGGBB hex.
const (
	// HyperlinkColor matches the default Office hyperlink blue.
	HyperlinkColor = "0563C1"

	// imagePlaceholderColor mutes the bracketed image placeholder text.
	imagePlaceholderColor = "808080"
)

// Context is the formatting state inherited down an inline recursion path.
// It is passed by value: each emphasis-like node sets its own flag for its
// subtree and forwards the rest unchanged, so formatting accumulates
// monotonically down a branch and never leaks across siblings.
type Context struct {
	Bold        bool
	Italic      bool
	Strike      bool
	Superscript bool
	Subscript   bool
}

// apply copies the context flags onto a run.
func (c Context) apply(r *docmodel.Run) {
	r.Bold = c.Bold
	r.Italic = c.Italic
	r.Strike = c.Strike
	r.Superscript = c.Superscript
	r.Subscript = c.Subscript
}

// Inline converts one inline node into its ordered run sequence under the
// inherited context. The function is total: unrecognized containers recurse
// with the context unchanged, unrecognized leaves become literal text, and
// nothing ever errors.
func Inline(n *mdast.Node, ctx Context) []docmodel.Run {
	switch n.Kind {
	case mdast.KindText:
		r := docmodel.Run{Text: n.Value}
		ctx.apply(&r)
		return []docmodel.Run{r}

	case mdast.KindEmphasis:
		ctx.Italic = true
		return InlineAll(n.Children, ctx)

	case mdast.KindStrong:
		ctx.Bold = true
		return InlineAll(n.Children, ctx)

	case mdast.KindDelete:
		ctx.Strike = true
		return InlineAll(n.Children, ctx)

	case mdast.KindSuperscript:
		ctx.Superscript = true
		return InlineAll(n.Children, ctx)

	case mdast.KindSubscript:
		ctx.Subscript = true
		return InlineAll(n.Children, ctx)

	case mdast.KindInlineCode:
		// Code keeps the inherited bold/italic but is never struck
		// through or scripted.
		return []docmodel.Run{{
			Text:   n.Value,
			Bold:   ctx.Bold,
			Italic: ctx.Italic,
			Mono:   true,
		}}

	case mdast.KindBreak:
		return []docmodel.Run{{Break: true}}

	case mdast.KindImage:
		// No binary embedding: render a bracketed placeholder from the
		// alt text, falling back to the URL.
		label := n.Value
		if label == "" {
			label = n.URL
		}
		return []docmodel.Run{{
			Text:   "[" + label + "]",
			Italic: true,
			Color:  imagePlaceholderColor,
		}}

	default:
		// Forward-compatible fallback: containers recurse, leaves with a
		// raw value pass it through as literal text.
		if len(n.Children) > 0 {
			return InlineAll(n.Children, ctx)
		}
		if n.Value != "" {
			r := docmodel.Run{Text: n.Value}
			ctx.apply(&r)
			return []docmodel.Run{r}
		}
		return nil
	}
}

// InlineAll converts a sequence of inline nodes, concatenating results in
// order.
func InlineAll(nodes []*mdast.Node, ctx Context) []docmodel.Run {
	var runs []docmodel.Run
	for _, n := range nodes {
		runs = append(runs, Inline(n, ctx)...)
	}
	return runs
}
