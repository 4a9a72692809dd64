package linker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dgallion1/chunklink/internal/document"
)

func fiveChunks() []document.Chunk {
	chunks := make([]document.Chunk, 5)
	for i := range chunks {
		chunks[i] = document.Chunk{
			ID:      fmt.Sprintf("chunk_%d", i),
			Content: fmt.Sprintf("content %d", i),
		}
	}
	return chunks
}

func TestResolver_MiddleWindowCoversAll(t *testing.T) {
	r := NewResolver()
	r.Add("doc", fiveChunks())

	got, err := r.Context("doc", "chunk_2", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected all 5 chunks, got %d", len(got))
	}
	for i, c := range got {
		if c.ID != fmt.Sprintf("chunk_%d", i) {
			t.Errorf("position %d: got %q", i, c.ID)
		}
	}
}

func TestResolver_ClippedAtStart(t *testing.T) {
	r := NewResolver()
	r.Add("doc", fiveChunks())

	got, err := r.Context("doc", "chunk_0", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected chunks 0-2 only, got %d", len(got))
	}
	if got[0].ID != "chunk_0" || got[2].ID != "chunk_2" {
		t.Errorf("expected clipped range [chunk_0, chunk_2], got [%s, %s]", got[0].ID, got[2].ID)
	}
}

func TestResolver_ClippedAtEnd(t *testing.T) {
	r := NewResolver()
	r.Add("doc", fiveChunks())

	got, err := r.Context("doc", "chunk_4", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected chunks 1-4, got %d", len(got))
	}
}

func TestResolver_ZeroWindow(t *testing.T) {
	r := NewResolver()
	r.Add("doc", fiveChunks())

	got, err := r.Context("doc", "chunk_3", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "chunk_3" {
		t.Errorf("expected just chunk_3, got %v", got)
	}
}

func TestResolver_NegativeWindowRejected(t *testing.T) {
	r := NewResolver()
	r.Add("doc", fiveChunks())

	if _, err := r.Context("doc", "chunk_0", -1); !errors.Is(err, document.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestResolver_UnknownChunk(t *testing.T) {
	r := NewResolver()
	r.Add("doc", fiveChunks())

	if _, err := r.Context("doc", "chunk_99", 1); !errors.Is(err, document.ErrChunkNotFound) {
		t.Errorf("expected ErrChunkNotFound, got %v", err)
	}
}

func TestResolver_UnknownDocument(t *testing.T) {
	r := NewResolver()
	if _, err := r.Context("missing", "chunk_0", 1); !errors.Is(err, document.ErrChunkNotFound) {
		t.Errorf("expected ErrChunkNotFound, got %v", err)
	}
}

func TestContextIn_NoCrossDocumentLinkage(t *testing.T) {
	got, err := ContextIn(fiveChunks(), "chunk_4", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("expected clipping at the document boundary, got %d chunks", len(got))
	}
}
