package blocksource

import (
	"strings"
	"testing"
)

func TestMarkdownSource_HeadingLevels(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.

## Section B

Section B content.
`
	s := &MarkdownSource{}
	blocks, err := s.Blocks(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		text     string
		category string
		level    int
	}{
		{"Title", "heading", 1},
		{"Intro text.", "paragraph", 0},
		{"Section A", "heading", 2},
		{"Section A content.", "paragraph", 0},
		{"Subsection A1", "heading", 3},
		{"Subsection A1 content.", "paragraph", 0},
		{"Section B", "heading", 2},
		{"Section B content.", "paragraph", 0},
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, w := range want {
		if blocks[i].Text != w.text {
			t.Errorf("block[%d]: expected text %q, got %q", i, w.text, blocks[i].Text)
		}
		if blocks[i].Category != w.category {
			t.Errorf("block[%d]: expected category %q, got %q", i, w.category, blocks[i].Category)
		}
		if blocks[i].HeadingLevel != w.level {
			t.Errorf("block[%d]: expected heading level %d, got %d", i, w.level, blocks[i].HeadingLevel)
		}
	}
}

func TestMarkdownSource_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	s := &MarkdownSource{}
	blocks, err := s.Blocks(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected 2 paragraph blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		if b.Category != "paragraph" {
			t.Errorf("block[%d]: expected category paragraph, got %q", i, b.Category)
		}
	}
}

func TestMarkdownSource_ListItems(t *testing.T) {
	input := `## Checklist

- First item
- Second item
- Third item
`
	s := &MarkdownSource{}
	blocks, err := s.Blocks(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks (heading + 3 items), got %d", len(blocks))
	}
	for i := 1; i < 4; i++ {
		if blocks[i].Category != "list_item" {
			t.Errorf("block[%d]: expected category list_item, got %q", i, blocks[i].Category)
		}
	}
	if !strings.Contains(blocks[1].Text, "First item") {
		t.Errorf("expected first item text, got %q", blocks[1].Text)
	}
}

func TestMarkdownSource_CodeBlocks(t *testing.T) {
	input := "# API Reference\n\nSome intro.\n\n```\nGET /api/users\nPOST /api/users\n```\n\nMore text after code.\n"

	s := &MarkdownSource{}
	blocks, err := s.Blocks(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var code string
	for _, b := range blocks {
		if strings.Contains(b.Text, "GET /api/users") {
			code = b.Text
		}
	}
	if code == "" {
		t.Fatalf("expected a block carrying the code content, blocks: %+v", blocks)
	}
	if !strings.Contains(code, "POST /api/users") {
		t.Errorf("expected code block to keep both lines, got %q", code)
	}

	last := blocks[len(blocks)-1]
	if last.Text != "More text after code." {
		t.Errorf("expected trailing paragraph last, got %q", last.Text)
	}
}

func TestMarkdownSource_EmptyInput(t *testing.T) {
	s := &MarkdownSource{}
	blocks, err := s.Blocks(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("expected 0 blocks for empty input, got %d", len(blocks))
	}
}
