package segment

import (
	"strings"
	"testing"

	"github.com/dgallion1/chunklink/internal/document"
)

func spanTexts(text string, spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, text[s.Start:s.End])
	}
	return out
}

func TestSegmentSentences_Latin(t *testing.T) {
	text := "First sentence. Second one! And a third?"
	got := spanTexts(text, SegmentSentences(text, document.ScriptLatin))
	want := []string{"First sentence.", "Second one!", "And a third?"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSegmentSentences_LowercaseAfterStopIsNotABoundary(t *testing.T) {
	text := "Costs approx. three lakh rupees."
	got := SegmentSentences(text, document.ScriptLatin)
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(got), spanTexts(text, got))
	}
}

func TestSegmentSentences_DecimalPointIsNotABoundary(t *testing.T) {
	text := "Rated 4.5 stars by users. Second sentence."
	got := SegmentSentences(text, document.ScriptLatin)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), spanTexts(text, got))
	}
}

func TestSegmentSentences_DevanagariDanda(t *testing.T) {
	text := "पहला वाक्य। दूसरा वाक्य।"
	got := spanTexts(text, SegmentSentences(text, document.ScriptDevanagari))
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "पहला वाक्य।" {
		t.Errorf("first sentence: got %q", got[0])
	}
}

func TestSegmentSentences_ArabicFullStop(t *testing.T) {
	text := "پہلا جملہ۔ دوسرا جملہ۔"
	got := SegmentSentences(text, document.ScriptArabic)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), spanTexts(text, got))
	}
}

func TestSegmentSentences_DetectsScriptWhenHintMissing(t *testing.T) {
	text := "पहला वाक्य। दूसरा वाक्य।"
	got := SegmentSentences(text, document.ScriptUnknown)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences via detected script, got %d", len(got))
	}
}

func TestSegmentSentences_NoTerminatorDegradesToTruncation(t *testing.T) {
	// ~300 runes of terminator-free text: a registered script with no
	// confident boundary must still yield bounded spans.
	text := strings.TrimSpace(strings.Repeat("word ", 60))
	spans := SegmentSentences(text, document.ScriptLatin)
	if len(spans) < 2 {
		t.Fatalf("expected multiple truncation spans, got %d", len(spans))
	}
	for i, s := range spans {
		if s.End-s.Start > fallbackSentenceRunes {
			t.Errorf("span %d exceeds truncation budget: %d runes", i, s.End-s.Start)
		}
		if i > 0 && s.Start < spans[i-1].End {
			t.Errorf("span %d overlaps previous", i)
		}
	}
}

func TestSegmentSentences_ShortTextSingleSpan(t *testing.T) {
	text := "Hello world"
	got := spanTexts(text, SegmentSentences(text, document.ScriptLatin))
	if len(got) != 1 || got[0] != "Hello world" {
		t.Fatalf("expected single covering span, got %v", got)
	}
}

func TestSegmentSentences_EmptyText(t *testing.T) {
	if got := SegmentSentences("", document.ScriptLatin); len(got) != 0 {
		t.Errorf("expected no spans, got %v", got)
	}
}

func TestSegmentWords_Whitespace(t *testing.T) {
	text := "  one two\tthree\n"
	got := spanTexts(text, SegmentWords(text, document.ScriptLatin))
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSegmentWords_FallbackTruncatesUnbrokenRuns(t *testing.T) {
	// Unregistered script: a long unbroken run is hard-cut so size math
	// downstream still sees bounded words.
	text := strings.Repeat("x", 100)
	spans := SegmentWords(text, document.ScriptUnknown)
	if len(spans) < 2 {
		t.Fatalf("expected hard-cut spans, got %d", len(spans))
	}
	for i, s := range spans {
		if s.End-s.Start > fallbackWordRunes {
			t.Errorf("span %d exceeds word truncation budget", i)
		}
	}
}

func TestDetectScript(t *testing.T) {
	cases := []struct {
		text string
		want document.Script
	}{
		{"plain english text", document.ScriptLatin},
		{"यह हिन्दी पाठ है", document.ScriptDevanagari},
		{"এটি বাংলা লেখা", document.ScriptBengali},
		{"இது தமிழ்", document.ScriptTamil},
		{"اردو متن", document.ScriptArabic},
		{"mostly english साथ", document.ScriptLatin},
		{"1234 !!", document.ScriptUnknown},
	}
	for _, c := range cases {
		if got := DetectScript(c.text); got != c.want {
			t.Errorf("DetectScript(%q): expected %v, got %v", c.text, c.want, got)
		}
	}
}

func TestScriptForLanguage(t *testing.T) {
	cases := []struct {
		code string
		want document.Script
	}{
		{"en", document.ScriptLatin},
		{"hi", document.ScriptDevanagari},
		{"sa", document.ScriptDevanagari},
		{"as", document.ScriptBengali},
		{"pa", document.ScriptGurmukhi},
		{"ur", document.ScriptArabic},
		{"ta", document.ScriptTamil},
		{"", document.ScriptUnknown},
	}
	for _, c := range cases {
		if got := ScriptForLanguage(c.code); got != c.want {
			t.Errorf("ScriptForLanguage(%q): expected %v, got %v", c.code, c.want, got)
		}
	}
}

func TestLanguages_TableShape(t *testing.T) {
	langs := Languages()
	if len(langs) < 22 {
		t.Fatalf("expected at least 22 languages, got %d", len(langs))
	}
	seen := map[string]bool{}
	for _, l := range langs {
		if seen[l.Code] {
			t.Errorf("duplicate language code %q", l.Code)
		}
		seen[l.Code] = true
		if l.Status == "fallback" && l.FallbackTo == "" {
			t.Errorf("language %q marked fallback without target", l.Code)
		}
	}
}
