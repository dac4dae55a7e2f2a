package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/mdast"
)

func parseBlocks(t *testing.T, markdown string) []*mdast.Node {
	t.Helper()
	p := NewGoldmarkParser()
	nodes, err := p.ParseMarkdown(context.Background(), markdown)
	if err != nil {
		t.Fatalf("ParseMarkdown() error = %v", err)
	}
	return nodes
}

// treeText concatenates all literal text in a subtree.
func treeText(n *mdast.Node) string {
	var b strings.Builder
	if n.Kind == mdast.KindText {
		b.WriteString(n.Value)
	}
	for _, c := range n.Children {
		b.WriteString(treeText(c))
	}
	return b.String()
}

func findKind(nodes []*mdast.Node, kind mdast.Kind) *mdast.Node {
	for _, n := range nodes {
		if n.Kind == kind {
			return n
		}
		if found := findKind(n.Children, kind); found != nil {
			return found
		}
	}
	return nil
}

func TestParseMarkdown_Heading(t *testing.T) {
	t.Parallel()

	for depth, md := range map[int]string{
		1: "# One",
		3: "### Three",
		6: "###### Six",
	} {
		nodes := parseBlocks(t, md)
		if len(nodes) != 1 {
			t.Fatalf("%q: len(nodes) = %d, want 1", md, len(nodes))
		}
		h := nodes[0]
		if h.Kind != mdast.KindHeading {
			t.Errorf("%q: Kind = %v", md, h.Kind)
		}
		if h.Depth != depth {
			t.Errorf("%q: Depth = %d, want %d", md, h.Depth, depth)
		}
	}
}

func TestParseMarkdown_Paragraph(t *testing.T) {
	t.Parallel()

	nodes := parseBlocks(t, "plain text")
	if len(nodes) != 1 || nodes[0].Kind != mdast.KindParagraph {
		t.Fatalf("nodes = %+v, want one paragraph", nodes)
	}
	if got := treeText(nodes[0]); got != "plain text" {
		t.Errorf("text = %q", got)
	}
}

func TestParseMarkdown_Emphasis(t *testing.T) {
	t.Parallel()

	t.Run("single asterisk is emphasis", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "*word*")
		if findKind(nodes, mdast.KindEmphasis) == nil {
			t.Error("no emphasis node")
		}
	})

	t.Run("double asterisk is strong", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "**word**")
		if findKind(nodes, mdast.KindStrong) == nil {
			t.Error("no strong node")
		}
	})

	t.Run("nested emphasis under strong", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "**a *b* c**")
		strong := findKind(nodes, mdast.KindStrong)
		if strong == nil {
			t.Fatal("no strong node")
		}
		if findKind(strong.Children, mdast.KindEmphasis) == nil {
			t.Error("no emphasis inside strong")
		}
		if got := treeText(strong); got != "a b c" {
			t.Errorf("strong text = %q, want %q", got, "a b c")
		}
	})

	t.Run("strikethrough is delete", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "~~gone~~")
		del := findKind(nodes, mdast.KindDelete)
		if del == nil {
			t.Fatal("no delete node")
		}
		if got := treeText(del); got != "gone" {
			t.Errorf("delete text = %q", got)
		}
	})
}

func TestParseMarkdown_InlineCode(t *testing.T) {
	t.Parallel()

	nodes := parseBlocks(t, "call `f(x)` here")
	code := findKind(nodes, mdast.KindInlineCode)
	if code == nil {
		t.Fatal("no inline code node")
	}
	if code.Value != "f(x)" {
		t.Errorf("Value = %q, want %q", code.Value, "f(x)")
	}
}

func TestParseMarkdown_LineBreaks(t *testing.T) {
	t.Parallel()

	t.Run("soft break joins with a space", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "line1\nline2")
		p := nodes[0]
		if findKind(p.Children, mdast.KindBreak) != nil {
			t.Error("soft break produced a break node")
		}
		if got := treeText(p); got != "line1 line2" {
			t.Errorf("text = %q, want %q", got, "line1 line2")
		}
	})

	t.Run("hard break produces a break node", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "line1  \nline2")
		p := nodes[0]
		if findKind(p.Children, mdast.KindBreak) == nil {
			t.Error("no break node for hard break")
		}
	})
}

func TestParseMarkdown_Links(t *testing.T) {
	t.Parallel()

	t.Run("inline link", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "[site](https://example.com)")
		link := findKind(nodes, mdast.KindLink)
		if link == nil {
			t.Fatal("no link node")
		}
		if link.URL != "https://example.com" {
			t.Errorf("URL = %q", link.URL)
		}
		if got := treeText(link); got != "site" {
			t.Errorf("label = %q", got)
		}
	})

	t.Run("autolink", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "visit https://example.com today")
		link := findKind(nodes, mdast.KindLink)
		if link == nil {
			t.Fatal("no autolink node")
		}
		if !strings.Contains(link.URL, "example.com") {
			t.Errorf("URL = %q", link.URL)
		}
	})

	t.Run("image carries alt and URL", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "![diagram](https://example.com/d.png)")
		img := findKind(nodes, mdast.KindImage)
		if img == nil {
			t.Fatal("no image node")
		}
		if img.Value != "diagram" {
			t.Errorf("alt = %q", img.Value)
		}
		if img.URL != "https://example.com/d.png" {
			t.Errorf("URL = %q", img.URL)
		}
	})
}

func TestParseMarkdown_Lists(t *testing.T) {
	t.Parallel()

	t.Run("bullet list", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "- a\n- b")
		list := findKind(nodes, mdast.KindList)
		if list == nil {
			t.Fatal("no list node")
		}
		if list.Ordered {
			t.Error("Ordered = true for bullet list")
		}
		if len(list.Children) != 2 {
			t.Errorf("len(items) = %d, want 2", len(list.Children))
		}
		for _, item := range list.Children {
			if item.Kind != mdast.KindListItem {
				t.Errorf("item kind = %v", item.Kind)
			}
			if item.Checked != nil {
				t.Error("plain item has Checked set")
			}
		}
	})

	t.Run("ordered list with start", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "3. a\n4. b")
		list := findKind(nodes, mdast.KindList)
		if list == nil {
			t.Fatal("no list node")
		}
		if !list.Ordered {
			t.Error("Ordered = false")
		}
		if list.Start != 3 {
			t.Errorf("Start = %d, want 3", list.Start)
		}
	})

	t.Run("nested list", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "- top\n  - nested")
		outer := findKind(nodes, mdast.KindList)
		if outer == nil {
			t.Fatal("no outer list")
		}
		item := outer.Children[0]
		if findKind(item.Children, mdast.KindList) == nil {
			t.Error("no nested list inside first item")
		}
	})

	t.Run("task list states", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "- [x] done\n- [ ] todo\n- plain")
		list := findKind(nodes, mdast.KindList)
		if list == nil {
			t.Fatal("no list node")
		}
		if len(list.Children) != 3 {
			t.Fatalf("len(items) = %d, want 3", len(list.Children))
		}

		done, todo, plain := list.Children[0], list.Children[1], list.Children[2]
		if done.Checked == nil || !*done.Checked {
			t.Errorf("done.Checked = %v, want true", done.Checked)
		}
		if todo.Checked == nil || *todo.Checked {
			t.Errorf("todo.Checked = %v, want false", todo.Checked)
		}
		if plain.Checked != nil {
			t.Errorf("plain.Checked = %v, want nil", plain.Checked)
		}

		// The checkbox inline itself must not survive into the item text.
		if got := strings.TrimSpace(treeText(done)); got != "done" {
			t.Errorf("done text = %q", got)
		}
	})
}

func TestParseMarkdown_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("fenced with language", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "```go\nfmt.Println(1)\nreturn\n```")
		code := findKind(nodes, mdast.KindCode)
		if code == nil {
			t.Fatal("no code node")
		}
		if code.Lang != "go" {
			t.Errorf("Lang = %q", code.Lang)
		}
		if code.Value != "fmt.Println(1)\nreturn" {
			t.Errorf("Value = %q", code.Value)
		}
	})

	t.Run("fenced without language", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "```\nplain\n```")
		code := findKind(nodes, mdast.KindCode)
		if code == nil {
			t.Fatal("no code node")
		}
		if code.Lang != "" {
			t.Errorf("Lang = %q, want empty", code.Lang)
		}
	})

	t.Run("indented code block", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "    indented line")
		code := findKind(nodes, mdast.KindCode)
		if code == nil {
			t.Fatal("no code node")
		}
		if code.Value != "indented line" {
			t.Errorf("Value = %q", code.Value)
		}
	})

	t.Run("blank interior lines survive", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "```\na\n\nb\n```")
		code := findKind(nodes, mdast.KindCode)
		if code == nil {
			t.Fatal("no code node")
		}
		if code.Value != "a\n\nb" {
			t.Errorf("Value = %q, want %q", code.Value, "a\n\nb")
		}
	})
}

func TestParseMarkdown_Blockquote(t *testing.T) {
	t.Parallel()

	nodes := parseBlocks(t, "> quoted text")
	bq := findKind(nodes, mdast.KindBlockquote)
	if bq == nil {
		t.Fatal("no blockquote node")
	}
	if findKind(bq.Children, mdast.KindParagraph) == nil {
		t.Error("no paragraph inside blockquote")
	}
}

func TestParseMarkdown_ThematicBreak(t *testing.T) {
	t.Parallel()

	nodes := parseBlocks(t, "above\n\n---\n\nbelow")
	if findKind(nodes, mdast.KindThematicBreak) == nil {
		t.Error("no thematic break node")
	}
}

func TestParseMarkdown_Table(t *testing.T) {
	t.Parallel()

	md := "| h1 | h2 |\n|:---|---:|\n| a | b |\n| c | d |"
	nodes := parseBlocks(t, md)
	table := findKind(nodes, mdast.KindTable)
	if table == nil {
		t.Fatal("no table node")
	}

	var rows []*mdast.Node
	for _, c := range table.Children {
		if c.Kind == mdast.KindTableRow {
			rows = append(rows, c)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3 (header + 2 body)", len(rows))
	}
	for _, row := range rows {
		if len(row.Children) != 2 {
			t.Errorf("row has %d cells, want 2", len(row.Children))
		}
	}

	if len(table.Align) != 2 {
		t.Fatalf("len(Align) = %d, want 2", len(table.Align))
	}
	if table.Align[0] != mdast.AlignLeft || table.Align[1] != mdast.AlignRight {
		t.Errorf("Align = %v", table.Align)
	}
}

func TestParseMarkdown_InlineScripts(t *testing.T) {
	t.Parallel()

	t.Run("paired sup tags wrap a superscript", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "x<sup>2</sup>")
		sup := findKind(nodes, mdast.KindSuperscript)
		if sup == nil {
			t.Fatal("no superscript node")
		}
		if got := treeText(sup); got != "2" {
			t.Errorf("superscript text = %q", got)
		}
		// The raw tags themselves are consumed.
		if findKind(nodes, mdast.KindHTML) != nil {
			t.Error("raw tag nodes survived pairing")
		}
	})

	t.Run("paired sub tags wrap a subscript", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "H<sub>2</sub>O")
		sub := findKind(nodes, mdast.KindSubscript)
		if sub == nil {
			t.Fatal("no subscript node")
		}
		if got := treeText(sub); got != "2" {
			t.Errorf("subscript text = %q", got)
		}
		if got := treeText(nodes[0]); got != "H2O" {
			t.Errorf("paragraph text = %q, want %q", got, "H2O")
		}
	})

	t.Run("unpaired tag stays literal", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "x<sup>2")
		if findKind(nodes, mdast.KindSuperscript) != nil {
			t.Error("unpaired tag became a superscript")
		}
		if findKind(nodes, mdast.KindHTML) == nil {
			t.Error("unpaired tag vanished")
		}
	})

	t.Run("nested scripts pair recursively", func(t *testing.T) {
		t.Parallel()
		nodes := parseBlocks(t, "a<sup>b<sub>c</sub></sup>")
		sup := findKind(nodes, mdast.KindSuperscript)
		if sup == nil {
			t.Fatal("no superscript node")
		}
		if findKind(sup.Children, mdast.KindSubscript) == nil {
			t.Error("no nested subscript")
		}
	})
}

func TestParseMarkdown_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewGoldmarkParser()
	_, err := p.ParseMarkdown(ctx, "# Title")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestParseMarkdown_EmptyInput(t *testing.T) {
	t.Parallel()

	nodes := parseBlocks(t, "")
	if len(nodes) != 0 {
		t.Errorf("len(nodes) = %d, want 0", len(nodes))
	}
}

func TestWrapInlineScripts_Direct(t *testing.T) {
	t.Parallel()

	t.Run("case-insensitive tags", func(t *testing.T) {
		t.Parallel()
		in := []*mdast.Node{
			{Kind: mdast.KindHTML, Value: "<SUP>"},
			mdast.NewText("2"),
			{Kind: mdast.KindHTML, Value: "</Sup>"},
		}
		out := wrapInlineScripts(in)
		if len(out) != 1 || out[0].Kind != mdast.KindSuperscript {
			t.Errorf("out = %+v", out)
		}
	})

	t.Run("non-script html passes through", func(t *testing.T) {
		t.Parallel()
		in := []*mdast.Node{{Kind: mdast.KindHTML, Value: "<kbd>"}}
		out := wrapInlineScripts(in)
		if len(out) != 1 || out[0].Kind != mdast.KindHTML {
			t.Errorf("out = %+v", out)
		}
	})
}
