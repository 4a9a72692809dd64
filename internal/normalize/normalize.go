package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dgallion1/chunklink/internal/document"
	"github.com/dgallion1/chunklink/internal/segment"
)

// minBlockRunes filters OCR noise: blocks shorter than this after trimming
// carry no retrievable content.
const minBlockRunes = 3

// categoryTypes maps collaborator block categories onto the closed unit type
// set. Heading-ish categories are resolved separately because they also need
// a heading level hint.
var categoryTypes = map[string]document.UnitType{
	"text":      document.Paragraph,
	"paragraph": document.Paragraph,
	"body":      document.Paragraph,
	"list":      document.ListItem,
	"list_item": document.ListItem,
	"bullet":    document.ListItem,
	"table":     document.Table,
	"figure":    document.Figure,
	"image":     document.Figure,
	"picture":   document.Figure,
	"caption":   document.Caption,
}

func headingCategory(cat string) bool {
	switch cat {
	case "heading", "title", "section_header":
		return true
	}
	return false
}

// furniture reports page decoration that never reaches the chunker.
func furniture(cat string) bool {
	return cat == "header" || cat == "footer"
}

// Normalize converts raw collaborator blocks into the canonical ordered unit
// stream: blocks sorted into reading order by (page, y, x), categories mapped
// to unit types, order indices assigned, and per-unit script hints detected.
// lang biases script detection when the text alone is ambiguous. The input
// slice is not mutated.
func Normalize(blocks []document.RawBlock, lang string) []document.Unit {
	ordered := make([]document.RawBlock, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.PageNumber != b.PageNumber {
			return a.PageNumber < b.PageNumber
		}
		if a.BBox.Y != b.BBox.Y {
			return a.BBox.Y < b.BBox.Y
		}
		return a.BBox.X < b.BBox.X
	})

	bias := segment.ScriptForLanguage(lang)

	var units []document.Unit
	for _, blk := range ordered {
		if furniture(blk.Category) {
			continue
		}
		text := strings.TrimSpace(blk.Text)
		if len([]rune(text)) < minBlockRunes {
			continue
		}

		unitType, level := mapCategory(blk)
		hint := segment.DetectScript(text)
		if hint == document.ScriptUnknown {
			hint = bias
		}

		idx := len(units)
		units = append(units, document.Unit{
			ID:           fmt.Sprintf("unit_%d", idx),
			Text:         text,
			Type:         unitType,
			HeadingLevel: level,
			PageNumber:   blk.PageNumber,
			OrderIndex:   idx,
			ScriptHint:   hint,
		})
	}
	return units
}

// mapCategory resolves the unit type and heading level of one block. A
// heading-ish category without a positive level hint is demoted to paragraph:
// absence of the hint means "not a heading".
func mapCategory(blk document.RawBlock) (document.UnitType, int) {
	if headingCategory(blk.Category) {
		if blk.HeadingLevel >= 1 {
			return document.Heading, blk.HeadingLevel
		}
		return document.Paragraph, 0
	}
	if t, ok := categoryTypes[blk.Category]; ok {
		return t, 0
	}
	return document.Paragraph, 0
}
