package blocksource

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/chunklink/internal/document"
)

// MarkdownSource handles Markdown files using goldmark.
type MarkdownSource struct{}

func (s *MarkdownSource) Blocks(r io.Reader, filename string) ([]document.RawBlock, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	out := newBlockList()
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			out.add(extractText(node, src), "heading", node.Level)
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				out.add(extractText(item, src), "list_item", 0)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			out.add(extractText(n, src), "paragraph", 0)
		default:
			out.add(extractText(n, src), "paragraph", 0)
		}
	}
	return out.blocks, nil
}

// extractText gets the text content of a goldmark AST node. A block's raw
// lines and its inline children cover the same source bytes, so only leaf
// blocks read their lines directly.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.FirstChild() == nil {
		if n.Type() == ast.TypeBlock {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
			buf.WriteByte(' ')
		}
	}
	return strings.TrimSpace(buf.String())
}
