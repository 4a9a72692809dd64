package document

import "errors"

// Error taxonomy shared by the whole engine. Callers match with errors.Is;
// call sites wrap with context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidConfiguration rejects bad chunk_size / overlap_ratio /
	// window values before any processing happens.
	ErrInvalidConfiguration = errors.New("chunklink: invalid configuration")

	// ErrEmptyInput reports a unit sequence with nothing to chunk. Callers
	// that tolerate empty documents treat it as a zero-chunk result.
	ErrEmptyInput = errors.New("chunklink: empty input")

	// ErrChunkNotFound reports a context query against an unknown document
	// or chunk id.
	ErrChunkNotFound = errors.New("chunklink: chunk not found")
)
