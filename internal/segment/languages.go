package segment

// Language describes one entry of the supported-language table. Status is
// "full" for languages with a dedicated script rule, "fallback" for languages
// served through a related language's script, and "limited" for languages
// whose script has no rule and routes to the degraded segmentation.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Script     string `json:"script"`
	Status     string `json:"status"`
	FallbackTo string `json:"fallback_to,omitempty"`
}

// Languages returns the supported-language table. The slice is freshly
// allocated on each call so callers may reorder it.
func Languages() []Language {
	return []Language{
		{Code: "en", Name: "English", Script: "latin", Status: "full"},
		{Code: "hi", Name: "Hindi", Script: "devanagari", Status: "full"},
		{Code: "bn", Name: "Bengali", Script: "bengali", Status: "full"},
		{Code: "te", Name: "Telugu", Script: "telugu", Status: "full"},
		{Code: "mr", Name: "Marathi", Script: "devanagari", Status: "full"},
		{Code: "ta", Name: "Tamil", Script: "tamil", Status: "full"},
		{Code: "gu", Name: "Gujarati", Script: "gujarati", Status: "full"},
		{Code: "kn", Name: "Kannada", Script: "kannada", Status: "full"},
		{Code: "ml", Name: "Malayalam", Script: "malayalam", Status: "full"},
		{Code: "pa", Name: "Punjabi", Script: "gurmukhi", Status: "full"},
		{Code: "ur", Name: "Urdu", Script: "arabic", Status: "full"},
		{Code: "ne", Name: "Nepali", Script: "devanagari", Status: "full"},
		{Code: "or", Name: "Odia", Script: "oriya", Status: "full"},
		{Code: "as", Name: "Assamese", Script: "bengali", Status: "fallback", FallbackTo: "bn"},
		{Code: "sa", Name: "Sanskrit", Script: "devanagari", Status: "fallback", FallbackTo: "hi"},
		{Code: "kok", Name: "Konkani", Script: "devanagari", Status: "fallback", FallbackTo: "mr"},
		{Code: "mai", Name: "Maithili", Script: "devanagari", Status: "fallback", FallbackTo: "hi"},
		{Code: "doi", Name: "Dogri", Script: "devanagari", Status: "fallback", FallbackTo: "hi"},
		{Code: "bho", Name: "Bhojpuri", Script: "devanagari", Status: "fallback", FallbackTo: "hi"},
		{Code: "sd", Name: "Sindhi", Script: "arabic", Status: "fallback", FallbackTo: "ur"},
		{Code: "ks", Name: "Kashmiri", Script: "arabic", Status: "fallback", FallbackTo: "ur"},
		{Code: "mni", Name: "Manipuri", Script: "bengali", Status: "fallback", FallbackTo: "bn"},
		{Code: "brx", Name: "Bodo", Script: "devanagari", Status: "fallback", FallbackTo: "hi"},
		{Code: "sat", Name: "Santali", Script: "ol chiki", Status: "limited", FallbackTo: "en"},
	}
}
