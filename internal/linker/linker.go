// Package linker finalizes the chunk graph: identity, prev/next pointers,
// section labels, and sibling sets. It is a pure, order-preserving transform
// with no policy of its own beyond what the strategies already decided.
package linker

import (
	"fmt"

	"github.com/dgallion1/chunklink/internal/document"
	"github.com/dgallion1/chunklink/internal/section"
)

// Link assigns positional chunk ids, wires the doubly linked list, normalizes
// each chunk's section labels from its first source unit's annotation, and
// groups siblings by parent section in chunk order, self included. The input
// slice is returned finalized; ids are stable across identical runs.
func Link(chunks []document.Chunk, ann section.Annotations) []document.Chunk {
	for i := range chunks {
		chunks[i].ID = fmt.Sprintf("chunk_%d", i)
	}

	bySection := make(map[string][]string)
	for i := range chunks {
		c := &chunks[i]
		if i > 0 {
			prev := chunks[i-1].ID
			c.PrevChunkID = &prev
		}
		if i < len(chunks)-1 {
			next := chunks[i+1].ID
			c.NextChunkID = &next
		}

		// The section labels come from the side table, not from whatever
		// the strategy happened to fill in, so the contract holds for
		// every strategy alike.
		if len(c.SourceUnitRefs) > 0 {
			if a, ok := ann.ForUnit(c.SourceUnitRefs[0]); ok {
				c.ParentSection = a.ParentSection
				path := make([]string, len(a.Path))
				copy(path, a.Path)
				c.SectionHierarchy = path
			}
		}
		bySection[c.ParentSection] = append(bySection[c.ParentSection], c.ID)
	}

	for i := range chunks {
		ids := bySection[chunks[i].ParentSection]
		siblings := make([]string, len(ids))
		copy(siblings, ids)
		chunks[i].SiblingChunks = siblings
	}
	return chunks
}
