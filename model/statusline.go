package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aibeing/being-tui/style"
)

// StatusLineModel renders the footer line: connection state, backend
// address, number of in-flight requests and stored conversations.
type StatusLineModel struct {
	backend       string
	online        bool
	inFlight      int
	conversations int
}

// NewStatusLine returns a zero-value StatusLineModel.
func NewStatusLine() StatusLineModel {
	return StatusLineModel{}
}

// SetBackend stores the backend address for display.
func (m *StatusLineModel) SetBackend(addr string) {
	m.backend = addr
}

// SetOnline flips the connection indicator.
func (m *StatusLineModel) SetOnline(online bool) {
	m.online = online
}

// SetInFlight updates the number of pending exchanges.
func (m *StatusLineModel) SetInFlight(n int) {
	m.inFlight = n
}

// SetConversationCount updates the stored-conversation count.
func (m *StatusLineModel) SetConversationCount(n int) {
	m.conversations = n
}

// Init satisfies tea.Model.
func (m StatusLineModel) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model; the status line is driven by setters.
func (m StatusLineModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the footer.
//
//	● online · localhost:8000 · 2 in flight · 5 conversations
func (m StatusLineModel) View() string {
	dot := lipgloss.NewStyle().Foreground(style.Error).Render("●")
	state := "offline"
	if m.online {
		dot = lipgloss.NewStyle().Foreground(style.Success).Render("●")
		state = "online"
	}
	line := dot + " " + state
	if m.backend != "" {
		line += " · " + m.backend
	}
	if m.inFlight > 0 {
		line += style.StatusSignal.Render(fmt.Sprintf(" · %d in flight", m.inFlight))
	}
	if m.conversations > 0 {
		line += fmt.Sprintf(" · %d conversations", m.conversations)
	}
	return style.StatusBar.Render(line)
}
