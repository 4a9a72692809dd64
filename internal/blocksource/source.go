// Package blocksource converts born-digital document formats into the raw
// block input contract. Real OCR/layout collaborators feed the engine the
// same shape; these adapters exist so the pipeline has upstream feeds without
// performing OCR itself.
package blocksource

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/chunklink/internal/document"
)

// Source converts raw document bytes into ordered raw blocks.
type Source interface {
	Blocks(r io.Reader, filename string) ([]document.RawBlock, error)
}

// SupportedExtensions lists file extensions the adapters can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".xlsx":     true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".csv":
		return &CSVSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".pdf":
		return &PDFSource{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".xlsx":
		return &XLSXSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// blockList accumulates blocks with synthetic coordinates: a monotonically
// increasing Y per page preserves source order through the normalizer's
// reading-order sort.
type blockList struct {
	blocks []document.RawBlock
	page   int
	y      float64
}

func newBlockList() *blockList {
	return &blockList{page: 1}
}

func (b *blockList) setPage(n int) {
	if n != b.page {
		b.page = n
		b.y = 0
	}
}

func (b *blockList) add(text, category string, headingLevel int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.y += 10
	b.blocks = append(b.blocks, document.RawBlock{
		Text:         text,
		Category:     category,
		PageNumber:   b.page,
		BBox:         document.BoundingBox{X: 0, Y: b.y, Width: 100, Height: 10},
		HeadingLevel: headingLevel,
	})
}
