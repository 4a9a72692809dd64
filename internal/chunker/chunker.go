package chunker

import (
	"fmt"
	"strings"

	"github.com/dgallion1/chunklink/internal/document"
	"github.com/dgallion1/chunklink/internal/section"
	"github.com/dgallion1/chunklink/internal/segment"
)

// BuildChunks runs the configured strategy over the annotated unit stream and
// returns the raw chunk sequence, in unit order, ready for linkage. All
// strategies keep table and figure units whole regardless of size.
func BuildChunks(units []document.Unit, ann section.Annotations, cfg Config) ([]document.Chunk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("build chunks: %w", document.ErrEmptyInput)
	}

	switch cfg.Strategy {
	case Fixed:
		return fixedChunks(units, ann, cfg), nil
	case Layout:
		return accumulateChunks(units, ann, cfg, true), nil
	default:
		return accumulateChunks(units, ann, cfg, false), nil
	}
}

// newChunk fills the strategy-owned fields of a raw chunk. Identity and
// prev/next/sibling linkage are the linker's job.
func newChunk(content string, refs []string, ann section.Annotation, isCont, contNext bool) document.Chunk {
	path := make([]string, len(ann.Path))
	copy(path, ann.Path)
	return document.Chunk{
		Content:          content,
		SourceUnitRefs:   refs,
		ParentSection:    ann.ParentSection,
		SectionHierarchy: path,
		IsContinuation:   isCont,
		ContinuesToNext:  contNext,
		TokenCount:       EstimateTokens(content),
	}
}

// accumulator gathers consecutive units until the token budget would be
// exceeded, closing chunks only at clean unit boundaries.
type accumulator struct {
	cfg    Config
	ann    section.Annotations
	chunks []document.Chunk
	units  []document.Unit
	words  int
}

func (a *accumulator) flush() {
	if len(a.units) == 0 {
		return
	}
	texts := make([]string, len(a.units))
	refs := make([]string, len(a.units))
	for i, u := range a.units {
		texts[i] = u.Text
		refs[i] = u.ID
	}
	first, _ := a.ann.ForUnit(a.units[0].ID)
	a.chunks = append(a.chunks, newChunk(strings.Join(texts, "\n\n"), refs, first, false, false))
	a.units = a.units[:0]
	a.words = 0
}

func (a *accumulator) add(u document.Unit) {
	if u.Type.Atomic() {
		a.flush()
		ann, _ := a.ann.ForUnit(u.ID)
		a.chunks = append(a.chunks, newChunk(u.Text, []string{u.ID}, ann, false, false))
		return
	}

	w := wordCount(u.Text)
	if tokensForWords(w) > a.cfg.ChunkSize {
		a.flush()
		a.addSplit(u)
		return
	}
	if len(a.units) > 0 && tokensForWords(a.words+w) > a.cfg.ChunkSize {
		a.flush()
	}
	a.units = append(a.units, u)
	a.words += w
}

// addSplit distributes a single oversized unit across consecutive chunks at
// sentence boundaries. Every resulting boundary falls inside the unit, so the
// continuation pair is set on each side of each split.
func (a *accumulator) addSplit(u document.Unit) {
	pieces := splitUnitText(u.Text, u.ScriptHint, a.cfg.ChunkSize)
	ann, _ := a.ann.ForUnit(u.ID)
	for i, piece := range pieces {
		a.chunks = append(a.chunks, newChunk(piece, []string{u.ID}, ann, i > 0, i < len(pieces)-1))
	}
}

// splitUnitText packs the unit's sentences greedily into pieces within the
// token budget. A sentence that alone exceeds the budget degrades to
// word-level splitting.
func splitUnitText(text string, hint document.Script, chunkSize int) []string {
	var pieces []string
	var cur []string
	words := 0
	flush := func() {
		if len(cur) > 0 {
			pieces = append(pieces, strings.Join(cur, " "))
			cur = cur[:0]
			words = 0
		}
	}

	for _, span := range segment.SegmentSentences(text, hint) {
		sent := text[span.Start:span.End]
		w := wordCount(sent)
		if tokensForWords(w) > chunkSize {
			flush()
			pieces = append(pieces, splitByWords(sent, hint, chunkSize)...)
			continue
		}
		if words > 0 && tokensForWords(words+w) > chunkSize {
			flush()
		}
		cur = append(cur, sent)
		words += w
	}
	flush()
	return pieces
}

// splitByWords is the last-resort split for a single overlong sentence.
func splitByWords(sent string, hint document.Script, chunkSize int) []string {
	budget := maxWordsForTokens(chunkSize)
	spans := segment.SegmentWords(sent, hint)

	var pieces []string
	for start := 0; start < len(spans); start += budget {
		end := start + budget
		if end > len(spans) {
			end = len(spans)
		}
		parts := make([]string, 0, end-start)
		for _, s := range spans[start:end] {
			parts = append(parts, sent[s.Start:s.End])
		}
		pieces = append(pieces, strings.Join(parts, " "))
	}
	return pieces
}

// accumulateChunks is the shared semantic/layout pass. With headingCloses
// set, a heading flushes the open accumulator and starts the next chunk, so
// the heading text travels with the content it introduces.
func accumulateChunks(units []document.Unit, ann section.Annotations, cfg Config, headingCloses bool) []document.Chunk {
	acc := accumulator{cfg: cfg, ann: ann}
	for _, u := range units {
		if headingCloses && u.Type == document.Heading {
			acc.flush()
		}
		acc.add(u)
	}
	acc.flush()
	return acc.chunks
}
