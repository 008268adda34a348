package chunker

import (
	"regexp"

	"docqa/internal/domain"
)

// ParagraphChunker splits text on blank lines.
// Text without any blank line becomes a single segment.
type ParagraphChunker struct {
	splitter *regexp.Regexp
}

func NewParagraphChunker() *ParagraphChunker {
	return &ParagraphChunker{splitter: regexp.MustCompile(`(?:\r?\n){2,}`)}
}

func (c *ParagraphChunker) Segment(text string) []domain.Segment {
	locs := c.splitter.FindAllStringIndex(text, -1)
	cuts := make([]cut, len(locs))
	for i, loc := range locs {
		cuts[i] = cut{end: loc[0], next: loc[1]}
	}
	return split(text, cuts)
}
