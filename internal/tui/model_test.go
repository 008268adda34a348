package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/domain"
)

type fakeQA struct {
	answer domain.Answer
	err    error
	asked  []string
}

func (f *fakeQA) Ask(q string) (domain.Answer, error) {
	f.asked = append(f.asked, q)
	return f.answer, f.err
}

func typeAndSend(m Model, text string) Model {
	m.input.SetValue(text)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestEnterAsksService(t *testing.T) {
	qa := &fakeQA{answer: domain.Answer{Text: "Solar panels reduce energy cost.", Matched: true, Score: 2, Segments: []int{0}}}
	m := New(qa, "docqa", "**", "**")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = typeAndSend(next.(Model), "  solar energy ")

	require.Equal(t, []string{"solar energy"}, qa.asked)
	msgs := m.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "assistant", msgs[2].Role)
	assert.Equal(t, "Solar panels reduce energy cost.", msgs[2].Content)
	assert.Equal(t, "Matched 1 passage(s), score=2", m.status)
	assert.Empty(t, m.input.Value())
	assert.NotEqual(t, "Loading...", m.View())
}

func TestEnterIgnoresBlankInput(t *testing.T) {
	qa := &fakeQA{}
	m := typeAndSend(New(qa, "docqa", "**", "**"), "   ")
	assert.Empty(t, qa.asked)
	assert.Len(t, m.Messages(), 1)
}

func TestServiceErrorShowsMessage(t *testing.T) {
	qa := &fakeQA{err: errors.New("no document loaded")}
	m := typeAndSend(New(qa, "docqa", "**", "**"), "solar")
	assert.Equal(t, "Error: no document loaded", m.status)
	assert.Contains(t, m.Messages()[2].Content, "Sorry")
}

func TestQuitKeys(t *testing.T) {
	m := New(&fakeQA{}, "docqa", "**", "**")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderMarkers(t *testing.T) {
	got := renderMarkers("a **solar** b **wind", "**", "**")
	assert.Contains(t, got, "solar")
	assert.NotContains(t, got, "**solar**")
	assert.Contains(t, got, "**wind")

	assert.Equal(t, "plain", renderMarkers("plain", "**", "**"))
	assert.Equal(t, "x **y**", renderMarkers("x **y**", "", ""))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, "No match", statusFor(domain.Answer{}))
	assert.Contains(t, statusFor(domain.Answer{Fallback: true}), "start of the document")
}
