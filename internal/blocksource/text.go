package blocksource

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/chunklink/internal/document"
)

// TextSource handles plain text files: blank-line separated paragraphs.
type TextSource struct{}

func (s *TextSource) Blocks(r io.Reader, filename string) ([]document.RawBlock, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := newBlockList()
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			out.add(current.String(), "paragraph", 0)
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out.blocks, nil
}
