package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/domain"
)

func result(texts ...string) domain.RankedResult {
	var r domain.RankedResult
	for i, t := range texts {
		r = append(r, domain.ScoredSegment{Segment: domain.NewSegment(i, 0, t), Score: len(texts) - i})
	}
	return r
}

func TestFormatEmptyIsSentinel(t *testing.T) {
	f := New(true)
	a := f.Format(nil, []string{"solar"})
	assert.False(t, a.Matched)
	assert.Equal(t, NotFoundMessage, a.Text)
	assert.Zero(t, a.Score)
	assert.Empty(t, a.Segments)
}

func TestFormatCustomSentinel(t *testing.T) {
	f := &Formatter{NotFound: "Not Found!!"}
	assert.Equal(t, "Not Found!!", f.Format(nil, nil).Text)
}

func TestFormatJoinsWithSingleSpace(t *testing.T) {
	f := New(false)
	a := f.Format(result("First one.", "Second one."), []string{"first"})
	assert.True(t, a.Matched)
	assert.Equal(t, "First one. Second one.", a.Text)
	assert.Equal(t, 2, a.Score)
	assert.Equal(t, []int{0, 1}, a.Segments)
}

func TestFormatHighlightsLongTokensCaseInsensitively(t *testing.T) {
	f := New(true)
	a := f.Format(result("Solar energy beats SOLAR cost and sun."), []string{"solar", "sun", "cost"})
	assert.Equal(t, "**Solar** energy beats **SOLAR** **cost** and sun.", a.Text)
}

func TestFormatHighlightPrefersLongerOverlappingToken(t *testing.T) {
	f := &Formatter{Highlight: true, Open: "[", Close: "]"}
	a := f.Format(result("renewable energy"), []string{"energ", "energy"})
	assert.Equal(t, "renewable [energy]", a.Text)
}

func TestFormatHighlightMarkersAreLiteral(t *testing.T) {
	f := &Formatter{Highlight: true, Open: "$1<", Close: ">"}
	a := f.Format(result("wind power"), []string{"wind"})
	assert.Equal(t, "$1<wind> power", a.Text)
}

func TestFormatHighlightDoesNotChangeSelection(t *testing.T) {
	r := result("alpha beta", "gamma alpha")
	plain := New(false).Format(r, []string{"alpha"})
	marked := New(true).Format(r, []string{"alpha"})
	assert.Equal(t, plain.Segments, marked.Segments)
	assert.Equal(t, plain.Score, marked.Score)
	assert.Equal(t, plain.Text, strings.ReplaceAll(marked.Text, "**", ""))
}

func TestFormatTruncatesAfterHighlighting(t *testing.T) {
	f := &Formatter{CharCap: 10, Highlight: true}
	a := f.Format(result("solar solar solar"), []string{"solar"})
	assert.Equal(t, "**solar** ", a.Text)
}

func TestFormatDefaultCap(t *testing.T) {
	long := strings.Repeat("x", 1500)
	a := (&Formatter{}).Format(result(long), nil)
	assert.Len(t, a.Text, DefaultCharCap)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello", Truncate("hello", 0))
	require.Equal(t, "", Truncate("", 3))
}
