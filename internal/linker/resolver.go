package linker

import (
	"fmt"
	"sync"

	"github.com/dgallion1/chunklink/internal/document"
)

// Resolver serves context window queries over finalized chunk sequences.
// Document runs register concurrently; queries are read-only.
type Resolver struct {
	mu   sync.RWMutex
	docs map[string][]document.Chunk
}

func NewResolver() *Resolver {
	return &Resolver{docs: make(map[string][]document.Chunk)}
}

// Add registers a document's finalized chunk sequence, replacing any earlier
// registration under the same id.
func (r *Resolver) Add(documentID string, chunks []document.Chunk) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[documentID] = chunks
}

// Context returns the chunks from offset -window to +window around chunkID
// within the document's sequence, clipped at the document boundaries.
func (r *Resolver) Context(documentID, chunkID string, window int) ([]document.Chunk, error) {
	if window < 0 {
		return nil, fmt.Errorf("window must be non-negative, got %d: %w", window, document.ErrInvalidConfiguration)
	}
	r.mu.RLock()
	chunks, ok := r.docs[documentID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("document %q: %w", documentID, document.ErrChunkNotFound)
	}
	return ContextIn(chunks, chunkID, window)
}

// ContextIn is the same query over a single in-memory sequence, for callers
// that hold the chunk list themselves.
func ContextIn(chunks []document.Chunk, chunkID string, window int) ([]document.Chunk, error) {
	if window < 0 {
		return nil, fmt.Errorf("window must be non-negative, got %d: %w", window, document.ErrInvalidConfiguration)
	}
	at := -1
	for i := range chunks {
		if chunks[i].ID == chunkID {
			at = i
			break
		}
	}
	if at < 0 {
		return nil, fmt.Errorf("chunk %q: %w", chunkID, document.ErrChunkNotFound)
	}

	lo := at - window
	if lo < 0 {
		lo = 0
	}
	hi := at + window + 1
	if hi > len(chunks) {
		hi = len(chunks)
	}
	out := make([]document.Chunk, hi-lo)
	copy(out, chunks[lo:hi])
	return out, nil
}
