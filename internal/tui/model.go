package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docqa/internal/domain"
)

// QAPort is the TUI-facing subset of the QA service.
type QAPort interface {
	Ask(question string) (domain.Answer, error)
}

// Message is one line of the conversation.
type Message struct {
	Role    string
	Content string
	Matched bool
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	service   QAPort
	input     textinput.Model
	viewport  viewport.Model
	messages  []Message
	title     string
	status    string
	openMark  string
	closeMark string
	ready     bool
}

// New creates a chat model. openMark and closeMark are the highlight markers the service emits.
func New(service QAPort, title, openMark, closeMark string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question about the document"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:   service,
		input:     ti,
		viewport:  vp,
		title:     title,
		openMark:  openMark,
		closeMark: closeMark,
		status:    "Document loaded. Ask me anything!",
		messages:  []Message{{Role: "system", Content: "Document processed successfully! You can now ask questions."}},
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := chatBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header, status, input box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.messages = append(m.messages, Message{Role: "user", Content: q})
			m.input.SetValue("")
			ans, err := m.service.Ask(q)
			if err != nil {
				m.status = "Error: " + err.Error()
				m.messages = append(m.messages, Message{Role: "assistant", Content: "Sorry, I encountered an error processing your question."})
			} else {
				m.status = statusFor(ans)
				m.messages = append(m.messages, Message{Role: "assistant", Content: ans.Text, Matched: ans.Matched})
			}
			m.refresh()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render(m.title)
	chat := chatBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + chat + "\n" + input + "\n" + status
}

// Messages returns the conversation so far.
func (m Model) Messages() []Message { return m.messages }

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m Model) renderMessages() string {
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case "user":
			b.WriteString(userStyle.Render("You: ") + msg.Content)
		case "assistant":
			body := msg.Content
			if msg.Matched {
				body = renderMarkers(body, m.openMark, m.closeMark)
			}
			b.WriteString(botStyle.Render("Bot: ") + body)
		default:
			b.WriteString(systemStyle.Render(msg.Content))
		}
	}
	return b.String()
}

func statusFor(ans domain.Answer) string {
	switch {
	case ans.Matched:
		return fmt.Sprintf("Matched %d passage(s), score=%d", len(ans.Segments), ans.Score)
	case ans.Fallback:
		return "No usable keywords; showing the start of the document"
	default:
		return "No match"
	}
}

var (
	chatBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	systemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// renderMarkers replaces each open...close pair with highlightStyle.
// An unmatched open marker is left as text.
func renderMarkers(text, openMark, closeMark string) string {
	if openMark == "" || closeMark == "" {
		return text
	}
	var b strings.Builder
	for {
		i := strings.Index(text, openMark)
		if i < 0 {
			break
		}
		rest := text[i+len(openMark):]
		j := strings.Index(rest, closeMark)
		if j < 0 {
			break
		}
		b.WriteString(text[:i])
		b.WriteString(highlightStyle.Render(rest[:j]))
		text = rest[j+len(closeMark):]
	}
	b.WriteString(text)
	return b.String()
}
