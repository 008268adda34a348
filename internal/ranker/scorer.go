// Package ranker scores document segments against query tokens and selects the best ones.
package ranker

import (
	"errors"
	"fmt"
	"strings"

	"docqa/internal/domain"
	"docqa/internal/tokenizer"
)

// MatchPolicy decides when a query token counts as present in a segment.
type MatchPolicy string

const (
	// MatchSubstring counts a token found anywhere in the segment text, including
	// inside longer words ("art" matches "start").
	MatchSubstring MatchPolicy = "substring"
	// MatchWord counts a token only when it equals a whole segment word.
	MatchWord MatchPolicy = "word"
)

var ErrUnknownMatchPolicy = errors.New("unknown match policy")

// ParseMatchPolicy maps a config value to a policy. Empty selects MatchSubstring.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case MatchSubstring, "":
		return MatchSubstring, nil
	case MatchWord:
		return MatchWord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchPolicy, s)
	}
}

// Score returns the number of distinct tokens contained in the segment's lowercase text.
func Score(tokens []string, segment domain.Segment) int {
	return MatchSubstring.Score(tokens, segment)
}

// Score counts distinct tokens that match segment under policy p.
// A token repeated in the query or in the segment contributes at most 1.
func (p MatchPolicy) Score(tokens []string, segment domain.Segment) int {
	var words map[string]struct{}
	if p == MatchWord {
		words = wordSet(segment.Lower)
	}
	seen := make(map[string]struct{}, len(tokens))
	score := 0
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if p == MatchWord {
			if _, ok := words[tok]; ok {
				score++
			}
			continue
		}
		if strings.Contains(segment.Lower, tok) {
			score++
		}
	}
	return score
}

func wordSet(lower string) map[string]struct{} {
	m := make(map[string]struct{})
	for tok := range tokenizer.Tokenize(lower) {
		if w := tokenizer.Trim(tok); w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}
