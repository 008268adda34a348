// Package formatter turns ranked segments into the answer text shown to a user.
package formatter

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"docqa/internal/domain"
)

const (
	DefaultCharCap = 1000
	// NotFoundMessage is the sentinel answer when no segment matches.
	NotFoundMessage = "I couldn't find relevant information about that in the document."
	DefaultOpen     = "**"
	DefaultClose    = "**"
	// minHighlightLen is exclusive: only tokens longer than this are marked.
	minHighlightLen = 3
)

// Formatter assembles answers. The zero value formats plain text with the defaults.
type Formatter struct {
	CharCap   int
	Highlight bool
	Open      string
	Close     string
	NotFound  string
}

// New returns a formatter with default markers and cap.
func New(highlight bool) *Formatter {
	return &Formatter{CharCap: DefaultCharCap, Highlight: highlight, Open: DefaultOpen, Close: DefaultClose, NotFound: NotFoundMessage}
}

// Format joins the selected segments with single spaces, marks query tokens when
// highlighting is on, and truncates the result to CharCap runes.
func (f *Formatter) Format(result domain.RankedResult, tokens []string) domain.Answer {
	if result.Empty() {
		return f.NotFoundAnswer()
	}
	parts := make([]string, len(result))
	indexes := make([]int, len(result))
	for i, s := range result {
		parts[i] = s.Segment.Text
		indexes[i] = s.Segment.Index
	}
	text := strings.Join(parts, " ")
	if f.Highlight {
		text = f.mark(text, tokens)
	}
	return domain.Answer{
		Text:     Truncate(text, f.charCap()),
		Matched:  true,
		Score:    result.BestScore(),
		Segments: indexes,
	}
}

// NotFoundAnswer is the zero-score sentinel answer. It is never highlighted.
func (f *Formatter) NotFoundAnswer() domain.Answer {
	msg := f.NotFound
	if msg == "" {
		msg = NotFoundMessage
	}
	return domain.Answer{Text: msg}
}

func (f *Formatter) charCap() int {
	if f.CharCap <= 0 {
		return DefaultCharCap
	}
	return f.CharCap
}

// mark wraps every case-insensitive occurrence of the distinct tokens longer than
// three characters in the Open/Close pair. Longer tokens win where tokens overlap.
func (f *Formatter) mark(text string, tokens []string) string {
	re := highlightPattern(tokens)
	if re == nil {
		return text
	}
	open, closing := f.Open, f.Close
	if open == "" && closing == "" {
		open, closing = DefaultOpen, DefaultClose
	}
	return re.ReplaceAllStringFunc(text, func(m string) string { return open + m + closing })
}

func highlightPattern(tokens []string) *regexp.Regexp {
	seen := make(map[string]struct{}, len(tokens))
	var words []string
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if utf8.RuneCountInString(tok) <= minHighlightLen {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		words = append(words, regexp.QuoteMeta(tok))
	}
	if len(words) == 0 {
		return nil
	}
	// leftmost-first alternation: try longer tokens first
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return regexp.MustCompile(`(?i)(?:` + strings.Join(words, "|") + `)`)
}

// Truncate returns at most limit runes of text. A non-positive limit returns text unchanged.
func Truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}
