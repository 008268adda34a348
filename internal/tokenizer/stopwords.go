package tokenizer

import "unicode/utf8"

// DefaultMinLength is the shortest query token kept by a Filter.
const DefaultMinLength = 3

// Filter drops short tokens and stopwords from a query.
// Leading and trailing punctuation is trimmed first unless KeepPunctuation is set.
type Filter struct {
	MinLength       int
	KeepPunctuation bool
	stopwords       map[string]struct{}
}

// NewFilter creates a filter with the default stopword set.
// A non-positive minLength selects DefaultMinLength.
func NewFilter(minLength int) *Filter {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Filter{MinLength: minLength, stopwords: defaultStopwords()}
}

// Apply returns the surviving tokens in their original order, duplicates included.
func (f *Filter) Apply(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !f.KeepPunctuation {
			tok = Trim(tok)
		}
		if utf8.RuneCountInString(tok) < f.MinLength {
			continue
		}
		if f.IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// IsStopword reports whether tok belongs to the stopword set.
func (f *Filter) IsStopword(tok string) bool {
	_, ok := f.stopwords[tok]
	return ok
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "nor", "so", "yet", "if", "then", "than",
		"is", "are", "was", "were", "be", "been", "being", "am", "do", "does", "did",
		"can", "could", "will", "would", "should", "shall", "may", "might", "must", "has", "have", "had",
		"what", "how", "why", "when", "where", "who", "whom", "whose", "which",
		"of", "to", "in", "on", "at", "by", "for", "with", "from", "about", "into", "this", "that", "these", "those",
		"it", "its", "there", "their", "tell", "please", "you", "your",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
