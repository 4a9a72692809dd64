package document

// BoundingBox is the page-space position of a raw block, as reported by the
// upstream layout collaborator. Coordinates are in the source's own units;
// only relative order matters here.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RawBlock is the input contract: one block of extracted page content from an
// OCR/layout/table collaborator. Category is the collaborator's own label and
// gets mapped to a UnitType during normalization. HeadingLevel 0 means the
// block is not a heading, whatever its category claims.
type RawBlock struct {
	Text         string      `json:"text"`
	Category     string      `json:"block_category"`
	PageNumber   int         `json:"page_number"`
	BBox         BoundingBox `json:"bounding_box"`
	HeadingLevel int         `json:"heading_level_hint,omitempty"`
}

// UnitType is the closed set of normalized block kinds.
type UnitType int

const (
	Paragraph UnitType = iota
	Heading
	ListItem
	Table
	Figure
	Caption
)

func (t UnitType) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case ListItem:
		return "list_item"
	case Table:
		return "table"
	case Figure:
		return "figure"
	case Caption:
		return "caption"
	default:
		return "unknown"
	}
}

// Atomic reports whether units of this type may never be split across chunk
// boundaries, regardless of size.
func (t UnitType) Atomic() bool {
	return t == Table || t == Figure
}

// Script identifies the dominant writing system of a unit's text. Detection
// and per-script segmentation rules live in internal/segment; the zero value
// routes to the segmentation fallback.
type Script int

const (
	ScriptUnknown Script = iota
	ScriptLatin
	ScriptDevanagari
	ScriptBengali
	ScriptGurmukhi
	ScriptGujarati
	ScriptOriya
	ScriptTamil
	ScriptTelugu
	ScriptKannada
	ScriptMalayalam
	ScriptArabic
)

func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptDevanagari:
		return "devanagari"
	case ScriptBengali:
		return "bengali"
	case ScriptGurmukhi:
		return "gurmukhi"
	case ScriptGujarati:
		return "gujarati"
	case ScriptOriya:
		return "oriya"
	case ScriptTamil:
		return "tamil"
	case ScriptTelugu:
		return "telugu"
	case ScriptKannada:
		return "kannada"
	case ScriptMalayalam:
		return "malayalam"
	case ScriptArabic:
		return "arabic"
	default:
		return "unknown"
	}
}

// Unit is the smallest normalized piece of document content. Immutable once
// the normalizer has produced it; every downstream stage reads, none writes.
type Unit struct {
	ID           string   // deterministic, "unit_<order_index>"
	Text         string
	Type         UnitType
	HeadingLevel int // 0 unless Type == Heading
	PageNumber   int
	OrderIndex   int // monotonic position in canonical reading order
	ScriptHint   Script
}

// Chunk is the output entity: a bounded, linked retrieval segment. The JSON
// shape is the persistence/search contract and carries exactly these fields.
// Prev/next are nil only at the document's first/last chunk.
type Chunk struct {
	ID               string   `json:"chunk_id"`
	Content          string   `json:"content"`
	SourceUnitRefs   []string `json:"source_unit_refs"`
	PrevChunkID      *string  `json:"prev_chunk_id"`
	NextChunkID      *string  `json:"next_chunk_id"`
	ParentSection    string   `json:"parent_section"`
	SectionHierarchy []string `json:"section_hierarchy"`
	SiblingChunks    []string `json:"sibling_chunks"`
	IsContinuation   bool     `json:"is_continuation"`
	ContinuesToNext  bool     `json:"continues_to_next"`
	TokenCount       int      `json:"token_count"`
}
