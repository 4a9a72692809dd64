package chunker

import (
	"strings"

	"github.com/dgallion1/chunklink/internal/document"
	"github.com/dgallion1/chunklink/internal/section"
	"github.com/dgallion1/chunklink/internal/segment"
)

// streamWord is one word of the concatenated unit stream, tagged with the
// unit it came from and whether it opens a sentence.
type streamWord struct {
	unitID    string
	text      string
	sentStart bool
}

// fixedChunks slides a token window with the configured overlap over the
// concatenated word stream. Atomic units interrupt the stream: they are
// emitted whole, and windowing restarts after them, so no table or figure is
// ever split.
func fixedChunks(units []document.Unit, ann section.Annotations, cfg Config) []document.Chunk {
	windowWords := cfg.ChunkSize * 3 / 4
	if windowWords < 1 {
		windowWords = 1
	}
	strideWords := cfg.strideTokens() * 3 / 4
	if strideWords < 1 {
		strideWords = 1
	}

	var chunks []document.Chunk
	var run []streamWord

	flushRun := func() {
		chunks = append(chunks, windowRun(run, ann, windowWords, strideWords)...)
		run = nil
	}

	for _, u := range units {
		if u.Type.Atomic() {
			flushRun()
			a, _ := ann.ForUnit(u.ID)
			chunks = append(chunks, newChunk(u.Text, []string{u.ID}, a, false, false))
			continue
		}
		run = append(run, streamWords(u)...)
	}
	flushRun()
	return chunks
}

// streamWords explodes one unit into tagged words. Sentence starts come from
// the unit's own script rule; a unit boundary is always a sentence start.
func streamWords(u document.Unit) []streamWord {
	starts := make(map[int]bool)
	for _, s := range segment.SegmentSentences(u.Text, u.ScriptHint) {
		starts[s.Start] = true
	}
	words := segment.SegmentWords(u.Text, u.ScriptHint)
	out := make([]streamWord, 0, len(words))
	for i, w := range words {
		out = append(out, streamWord{
			unitID:    u.ID,
			text:      u.Text[w.Start:w.End],
			sentStart: i == 0 || starts[w.Start],
		})
	}
	return out
}

// windowRun emits the windows over one uninterrupted word run. A window whose
// start falls strictly inside a sentence is a continuation; continues_to_next
// mirrors the following window's flag so the linkage invariant holds under
// overlap, and the final window always ends at the run boundary.
func windowRun(run []streamWord, ann section.Annotations, windowWords, strideWords int) []document.Chunk {
	if len(run) == 0 {
		return nil
	}
	var out []document.Chunk
	for start := 0; ; start += strideWords {
		end := start + windowWords
		if end > len(run) {
			end = len(run)
		}

		texts := make([]string, 0, end-start)
		var refs []string
		for _, w := range run[start:end] {
			texts = append(texts, w.text)
			if len(refs) == 0 || refs[len(refs)-1] != w.unitID {
				refs = append(refs, w.unitID)
			}
		}
		first, _ := ann.ForUnit(refs[0])
		out = append(out, newChunk(strings.Join(texts, " "), refs, first, !run[start].sentStart, false))

		if end == len(run) {
			break
		}
	}
	for i := 0; i+1 < len(out); i++ {
		out[i].ContinuesToNext = out[i+1].IsContinuation
	}
	return out
}
