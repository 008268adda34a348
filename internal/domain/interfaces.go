package domain

import (
	"context"
	"errors"
	"strings"
)

// ErrNoDocument is returned when a question arrives before any document is loaded.
var ErrNoDocument = errors.New("no document loaded")

// Document is a loaded text plus the segments derived from it.
// A Document is never mutated after construction; loading new text replaces it.
type Document struct {
	Text         string
	Segmentation string
	Segments     []Segment
}

// Segment is a contiguous span of a document used as a scoring unit.
type Segment struct {
	Index  int
	Offset int
	Text   string
	// Lower is Text lowercased once at load time so queries do not repeat it.
	Lower string
}

// NewSegment builds a segment and precomputes its lowercase form.
func NewSegment(index, offset int, text string) Segment {
	return Segment{Index: index, Offset: offset, Text: text, Lower: strings.ToLower(text)}
}

// ScoredSegment pairs a segment with its relevance score for one query.
type ScoredSegment struct {
	Segment Segment
	Score   int
}

// RankedResult holds the selected segments, best first.
// An empty result means no segment matched.
type RankedResult []ScoredSegment

// Empty reports whether the result is the "not found" sentinel.
func (r RankedResult) Empty() bool { return len(r) == 0 }

// BestScore returns the score of the first entry, or 0 when empty.
func (r RankedResult) BestScore() int {
	if len(r) == 0 {
		return 0
	}
	return r[0].Score
}

// Answer is the response returned to a caller for one question.
type Answer struct {
	Text     string
	Matched  bool
	Score    int
	Segments []int
	// Fallback is set when the query had no usable tokens and Text is a document prefix.
	Fallback bool
}

// Segmenter splits raw document text into ordered segments.
type Segmenter interface {
	Segment(text string) []Segment
}

// TextProvider yields raw document text for a reference such as a path or URL.
type TextProvider interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// QAService defines the operations exposed by the application core.
type QAService interface {
	Load(text string) (*Document, error)
	LoadFrom(ctx context.Context, provider TextProvider, ref string) (*Document, error)
	Ask(question string) (Answer, error)
	Current() *Document
	// Loads counts documents installed since start.
	Loads() uint64
}
