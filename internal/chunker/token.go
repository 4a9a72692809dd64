package chunker

import "strings"

// EstimateTokens gives a rough token count from the whitespace word count.
// This is intentionally simple — exact tokenization is not required for
// chunking, and every strategy uses this same estimator.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	// Roughly 0.75 words per token for English-like text.
	tokens := int(float64(words) * 1.33)
	if tokens < 1 && len(text) > 0 {
		tokens = 1
	}
	return tokens
}

func tokensForWords(words int) int {
	return int(float64(words) * 1.33)
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// maxWordsForTokens inverts the estimator: the largest word count whose
// token estimate stays within budget.
func maxWordsForTokens(tokens int) int {
	words := int(float64(tokens) / 1.33)
	if words < 1 {
		words = 1
	}
	return words
}
