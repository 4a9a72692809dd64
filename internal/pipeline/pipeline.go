// Package pipeline runs the forward chunking pass for one document and fans
// out across documents. Within a document, processing is strictly sequential:
// hierarchy state and linkage both depend on unit order.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/chunklink/internal/chunker"
	"github.com/dgallion1/chunklink/internal/document"
	"github.com/dgallion1/chunklink/internal/linker"
	"github.com/dgallion1/chunklink/internal/normalize"
	"github.com/dgallion1/chunklink/internal/section"
)

// Document is one unit of work: the raw blocks delivered by upstream
// collaborators for a single source document.
type Document struct {
	ID     string
	Blocks []document.RawBlock
}

// Stats summarizes one document run.
type Stats struct {
	Units       int            `json:"units"`
	Sections    int            `json:"sections"`
	Chunks      int            `json:"chunks"`
	Tokens      int            `json:"tokens"`
	UnitsByType map[string]int `json:"units_by_type"`
	ElapsedMs   int64          `json:"elapsed_ms"`
}

// Result is the document-level output contract: the full ordered chunk list
// plus run identity and stats.
type Result struct {
	DocumentID string           `json:"document_id"`
	Strategy   string           `json:"strategy"`
	Chunks     []document.Chunk `json:"chunks"`
	Stats      Stats            `json:"stats"`
}

// Pipeline executes the forward pass: normalize, build hierarchy, chunk,
// link. It holds only read-only configuration and is safe to share across
// concurrent document runs.
type Pipeline struct {
	cfg  chunker.Config
	lang string
	log  *slog.Logger
}

func New(cfg chunker.Config, lang string, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{cfg: cfg, lang: lang, log: log.With("component", "pipeline")}
}

// Run processes one document to completion. There is no mid-document
// cancellation: a partial hierarchy is useless, so a caller wanting out
// abandons the whole run. An empty block list surfaces ErrEmptyInput.
func (p *Pipeline) Run(doc Document) (*Result, error) {
	start := time.Now()
	id := doc.ID
	if id == "" {
		id = NewDocumentID()
	}
	log := p.log.With("document_id", id)

	units := normalize.Normalize(doc.Blocks, p.lang)
	ann := section.Build(units)
	log.Debug("normalized", "blocks", len(doc.Blocks), "units", len(units),
		"sections", len(ann.Tree().Nodes)-1)

	raw, err := chunker.BuildChunks(units, ann, p.cfg)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", id, err)
	}
	chunks := linker.Link(raw, ann)

	stats := Stats{
		Units:       len(units),
		Sections:    len(ann.Tree().Nodes) - 1,
		Chunks:      len(chunks),
		UnitsByType: make(map[string]int, 6),
		ElapsedMs:   time.Since(start).Milliseconds(),
	}
	for _, u := range units {
		stats.UnitsByType[u.Type.String()]++
	}
	for _, c := range chunks {
		stats.Tokens += c.TokenCount
	}

	log.Info("document chunked", "strategy", p.cfg.Strategy.String(),
		"chunks", stats.Chunks, "tokens", stats.Tokens, "elapsed_ms", stats.ElapsedMs)

	return &Result{
		DocumentID: id,
		Strategy:   p.cfg.Strategy.String(),
		Chunks:     chunks,
		Stats:      stats,
	}, nil
}
