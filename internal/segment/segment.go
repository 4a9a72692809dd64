package segment

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/dgallion1/chunklink/internal/document"
)

// Span is a byte-offset range into the text it was produced from. Spans are
// ordered, non-overlapping, and cover all non-space content.
type Span struct {
	Start int
	End   int
}

const (
	// fallbackSentenceRunes bounds synthetic "sentences" produced when no
	// terminator matches, so downstream size math always has finite spans.
	fallbackSentenceRunes = 200

	// fallbackWordRunes bounds unbroken runs in scripts without mandatory
	// spacing when the fallback rule is in effect.
	fallbackWordRunes = 24
)

// rule is one entry of the segmentation table: a script matcher plus the
// sentence terminators for that script. A rule with truncate set is the
// degraded mode: whitespace words with fixed-length truncation of long runs.
type rule struct {
	matches     func(document.Script) bool
	terminators map[rune]bool
	truncate    bool
}

func anyOf(scripts ...document.Script) func(document.Script) bool {
	return func(s document.Script) bool {
		for _, want := range scripts {
			if s == want {
				return true
			}
		}
		return false
	}
}

// The table is evaluated in priority order and terminates in an
// always-matching fallback. It is immutable after init: safe for concurrent
// reads by any number of parallel document runs.
var rules = []rule{
	{
		// Danda scripts: the danda and double danda are shared across the
		// Indic block family; Latin punctuation shows up in mixed text.
		matches: anyOf(document.ScriptDevanagari, document.ScriptBengali,
			document.ScriptGurmukhi, document.ScriptGujarati, document.ScriptOriya),
		terminators: map[rune]bool{'।': true, '॥': true, '.': true, '!': true, '?': true},
	},
	{
		matches:     anyOf(document.ScriptArabic),
		terminators: map[rune]bool{'۔': true, '؟': true, '.': true, '!': true},
	},
	{
		// Dravidian scripts write with the Latin full stop set.
		matches: anyOf(document.ScriptLatin, document.ScriptTamil,
			document.ScriptTelugu, document.ScriptKannada, document.ScriptMalayalam),
		terminators: map[rune]bool{'.': true, '!': true, '?': true},
	},
	{
		matches:  func(document.Script) bool { return true },
		truncate: true,
	},
}

func ruleFor(text string, hint document.Script) rule {
	script := hint
	if script == document.ScriptUnknown {
		script = DetectScript(text)
	}
	for _, r := range rules {
		if r.matches(script) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// SegmentSentences splits text into sentence spans using the rule registered
// for the hinted (or detected) script. It never fails: when no terminator
// matches, the result degrades to fixed-length truncation spans.
func SegmentSentences(text string, hint document.Script) []Span {
	r := ruleFor(text, hint)
	if !r.truncate {
		if spans := scanSentences(text, r.terminators); len(spans) > 1 {
			return spans
		} else if len(spans) == 1 && utf8.RuneCountInString(text[spans[0].Start:spans[0].End]) <= fallbackSentenceRunes {
			return spans
		}
	}
	return truncationSpans(text, fallbackSentenceRunes)
}

// SegmentWords splits text into word spans. All registered scripts are
// whitespace-delimited; the fallback additionally truncates unbroken runs so
// scripts without mandatory spacing still yield bounded units.
func SegmentWords(text string, hint document.Script) []Span {
	words := whitespaceSpans(text)
	if !ruleFor(text, hint).truncate {
		return words
	}
	var out []Span
	for _, w := range words {
		if utf8.RuneCountInString(text[w.Start:w.End]) <= fallbackWordRunes {
			out = append(out, w)
			continue
		}
		out = append(out, hardCut(text, w, fallbackWordRunes)...)
	}
	return out
}

// scanSentences walks the text marking a boundary after each terminator run
// that is followed by whitespace (or end of text) and whose next non-space
// rune is not lowercase, which keeps common abbreviations intact.
func scanSentences(text string, terminators map[rune]bool) []Span {
	var spans []Span
	start := -1
	cut := -1 // byte offset just past a terminator run, pending confirmation
	spaced := false
	lastEnd := 0

	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if cut >= 0 {
			switch {
			case isSpace:
				spaced = true
			case !spaced:
				// Rune glued to the terminator ("3.5"): extend on further
				// terminators, otherwise this was not a boundary.
				if terminators[r] {
					cut = i + utf8.RuneLen(r)
				} else {
					cut = -1
				}
			case unicode.IsLower(r):
				cut = -1
				spaced = false
			default:
				spans = append(spans, Span{Start: start, End: cut})
				start = i
				cut = -1
				spaced = false
			}
		}
		if !isSpace {
			if start < 0 {
				start = i
			}
			lastEnd = i + utf8.RuneLen(r)
			if cut < 0 && terminators[r] {
				cut = i + utf8.RuneLen(r)
				spaced = false
			}
		}
	}
	if start >= 0 && lastEnd > start {
		spans = append(spans, Span{Start: start, End: lastEnd})
	}
	return spans
}

// truncationSpans is the degraded segmentation: greedy whitespace-word fills
// up to maxRunes per span, hard-cutting runs that exceed the budget alone.
func truncationSpans(text string, maxRunes int) []Span {
	var spans []Span
	cur := Span{Start: -1}
	runes := 0
	flush := func() {
		if cur.Start >= 0 {
			spans = append(spans, cur)
			cur = Span{Start: -1}
			runes = 0
		}
	}
	for _, w := range whitespaceSpans(text) {
		n := utf8.RuneCountInString(text[w.Start:w.End])
		if n > maxRunes {
			flush()
			spans = append(spans, hardCut(text, w, maxRunes)...)
			continue
		}
		if cur.Start < 0 {
			cur, runes = w, n
			continue
		}
		if runes+1+n > maxRunes {
			flush()
			cur, runes = w, n
			continue
		}
		cur.End = w.End
		runes += 1 + n
	}
	flush()
	return spans
}

// hardCut slices a single span into pieces of at most maxRunes runes.
func hardCut(text string, w Span, maxRunes int) []Span {
	var out []Span
	for off := w.Start; off < w.End; {
		end := off
		for n := 0; end < w.End && n < maxRunes; n++ {
			_, size := utf8.DecodeRuneInString(text[end:w.End])
			end += size
		}
		out = append(out, Span{Start: off, End: end})
		off = end
	}
	return out
}

func whitespaceSpans(text string) []Span {
	var spans []Span
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(text)})
	}
	return spans
}

var scriptTables = []struct {
	script document.Script
	table  *unicode.RangeTable
}{
	{document.ScriptLatin, unicode.Latin},
	{document.ScriptDevanagari, unicode.Devanagari},
	{document.ScriptBengali, unicode.Bengali},
	{document.ScriptGurmukhi, unicode.Gurmukhi},
	{document.ScriptGujarati, unicode.Gujarati},
	{document.ScriptOriya, unicode.Oriya},
	{document.ScriptTamil, unicode.Tamil},
	{document.ScriptTelugu, unicode.Telugu},
	{document.ScriptKannada, unicode.Kannada},
	{document.ScriptMalayalam, unicode.Malayalam},
	{document.ScriptArabic, unicode.Arabic},
}

// DetectScript returns the dominant script of text by character counts.
// Latin is listed first so ties resolve toward it; text with no characters
// from any registered script yields ScriptUnknown.
func DetectScript(text string) document.Script {
	counts := make([]int, len(scriptTables))
	for _, r := range text {
		for i, st := range scriptTables {
			if unicode.Is(st.table, r) {
				counts[i]++
				break
			}
		}
	}
	best := document.ScriptUnknown
	bestN := 0
	for i, n := range counts {
		if n > bestN {
			best = scriptTables[i].script
			bestN = n
		}
	}
	return best
}

// ScriptForLanguage maps a BCP-47 language code to its likely script, used to
// bias per-unit detection when the text alone is ambiguous. Languages whose
// likely script has no registered rule resolve to ScriptUnknown, which routes
// to the fallback.
func ScriptForLanguage(code string) document.Script {
	if code == "" {
		return document.ScriptUnknown
	}
	tag := language.Make(code)
	script, conf := tag.Script()
	if conf == language.No {
		return document.ScriptUnknown
	}
	switch script.String() {
	case "Latn":
		return document.ScriptLatin
	case "Deva":
		return document.ScriptDevanagari
	case "Beng":
		return document.ScriptBengali
	case "Guru":
		return document.ScriptGurmukhi
	case "Gujr":
		return document.ScriptGujarati
	case "Orya":
		return document.ScriptOriya
	case "Taml":
		return document.ScriptTamil
	case "Telu":
		return document.ScriptTelugu
	case "Knda":
		return document.ScriptKannada
	case "Mlym":
		return document.ScriptMalayalam
	case "Arab":
		return document.ScriptArabic
	}
	return document.ScriptUnknown
}
