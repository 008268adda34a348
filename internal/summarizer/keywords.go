// Package summarizer produces a short overview of a loaded document.
package summarizer

import (
	"sort"

	"docqa/internal/domain"
	"docqa/internal/tokenizer"
)

// DefaultKeywords is the overview size used when n <= 0.
const DefaultKeywords = 5

// Keyword is a document term with the number of segments containing it.
type Keyword struct {
	Term     string `json:"term"`
	Segments int    `json:"segments"`
}

// Keywords ranks the filtered tokens of doc by how many segments contain them.
// Ties fall back to first appearance in the document.
func Keywords(doc *domain.Document, filter *tokenizer.Filter, n int) []Keyword {
	if doc == nil || len(doc.Segments) == 0 {
		return nil
	}
	if n <= 0 {
		n = DefaultKeywords
	}
	if filter == nil {
		filter = tokenizer.NewFilter(0)
	}

	freq := map[string]int{}
	var order []string
	for _, seg := range doc.Segments {
		seen := map[string]struct{}{}
		for _, tok := range filter.Apply(tokenizer.Collect(seg.Text)) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			if _, ok := freq[tok]; !ok {
				order = append(order, tok)
			}
			freq[tok]++
		}
	}

	out := make([]Keyword, len(order))
	for i, term := range order {
		out[i] = Keyword{Term: term, Segments: freq[term]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Segments > out[j].Segments })
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

// Terms returns only the keyword strings.
func Terms(kws []Keyword) []string {
	terms := make([]string, len(kws))
	for i, k := range kws {
		terms[i] = k.Term
	}
	return terms
}
