// Package tokenizer turns document and query text into lowercase word tokens
// and filters low-information query tokens.
package tokenizer

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// Tokenize yields the lowercase whitespace-separated words of text.
// Punctuation is left in place; no stemming is applied.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for field := range strings.FieldsSeq(text) {
			if !yield(strings.ToLower(field)) {
				return
			}
		}
	}
}

// Collect materializes Tokenize into a slice.
func Collect(text string) []string {
	return slices.Collect(Tokenize(text))
}

// Trim strips leading and trailing punctuation from a token, so "energy?" becomes "energy".
func Trim(token string) string {
	return strings.TrimFunc(token, unicode.IsPunct)
}
