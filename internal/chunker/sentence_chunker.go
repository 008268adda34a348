package chunker

import (
	"regexp"

	"docqa/internal/domain"
)

// SentenceChunker splits text after '.', '!' or '?' when followed by whitespace.
// The terminator stays with its sentence.
type SentenceChunker struct {
	splitter *regexp.Regexp
}

func NewSentenceChunker() *SentenceChunker {
	return &SentenceChunker{splitter: regexp.MustCompile(`[.!?]\s+`)}
}

func (c *SentenceChunker) Segment(text string) []domain.Segment {
	locs := c.splitter.FindAllStringIndex(text, -1)
	cuts := make([]cut, len(locs))
	for i, loc := range locs {
		// keep the one-byte terminator on the left side
		cuts[i] = cut{end: loc[0] + 1, next: loc[1]}
	}
	return split(text, cuts)
}
