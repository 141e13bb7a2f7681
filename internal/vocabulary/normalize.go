package vocabulary

import (
	"strings"
	"unicode"
)

// Normalize lowercases a token and strips surrounding punctuation. Hyphens
// inside the word are preserved so that compounds like "well-known" keep
// their surface shape for analysis.
func Normalize(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Lemmatizer reduces a surface form to its dictionary form. Production
// deployments plug in an external NLP service; SuffixLemmatizer is the
// self-contained fallback.
type Lemmatizer interface {
	Lemmatize(token string) string
}

// SuffixLemmatizer strips common inflection suffixes, accepting a candidate
// only when the lexicon actually knows the stripped form. Without a lexicon
// hit the normalized token is returned unchanged.
type SuffixLemmatizer struct {
	lexicon *Lexicon
}

// NewSuffixLemmatizer creates a lexicon-guided suffix lemmatizer.
func NewSuffixLemmatizer(lexicon *Lexicon) *SuffixLemmatizer {
	return &SuffixLemmatizer{lexicon: lexicon}
}

var inflectionSuffixes = []string{"es", "s", "en", "e", "ed", "ing", "er", "est"}

// Lemmatize implements Lemmatizer.
func (l *SuffixLemmatizer) Lemmatize(token string) string {
	normalized := Normalize(token)
	if normalized == "" {
		return ""
	}
	if l.lexicon != nil && l.lexicon.Contains(normalized) {
		return normalized
	}
	for _, suffix := range inflectionSuffixes {
		if len(normalized) <= len(suffix)+2 {
			continue
		}
		stripped := strings.TrimSuffix(normalized, suffix)
		if stripped == normalized {
			continue
		}
		if l.lexicon != nil && l.lexicon.Contains(stripped) {
			return stripped
		}
	}
	return normalized
}
