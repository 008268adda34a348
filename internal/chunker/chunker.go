// Package chunker splits a document into paragraph or sentence segments.
package chunker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"docqa/internal/domain"
)

// Segmentation policies.
const (
	Paragraph = "paragraph"
	Sentence  = "sentence"
)

// ErrUnknownSegmentation is returned by New for an unsupported policy.
var ErrUnknownSegmentation = errors.New("unknown segmentation")

// New returns the segmenter for policy. An empty policy selects Paragraph.
func New(policy string) (domain.Segmenter, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case Paragraph, "":
		return NewParagraphChunker(), nil
	case Sentence:
		return NewSentenceChunker(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSegmentation, policy)
	}
}

// cut marks a delimiter: the segment before it ends at end, the next one starts at next.
type cut struct {
	end  int
	next int
}

// split turns text and its delimiter cuts into trimmed, non-empty segments.
func split(text string, cuts []cut) []domain.Segment {
	var segments []domain.Segment
	start := 0
	emit := func(end int) {
		piece := text[start:end]
		trimmed := strings.TrimSpace(piece)
		if trimmed == "" {
			return
		}
		lead := len(piece) - len(strings.TrimLeftFunc(piece, unicode.IsSpace))
		segments = append(segments, domain.NewSegment(len(segments), start+lead, trimmed))
	}
	for _, c := range cuts {
		emit(c.end)
		start = c.next
	}
	emit(len(text))
	return segments
}
