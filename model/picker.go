package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aibeing/being-tui/style"
)

// HistoryItem is a single conversation entry in the history picker.
type HistoryItem struct {
	ID        string
	Title     string
	Date      string
	Exchanges int
	Active    bool
}

// HistoryChoice is emitted when the user selects a conversation.
type HistoryChoice struct {
	ID string
}

// HistoryDelete is emitted when the user deletes a conversation.
type HistoryDelete struct {
	ID string
}

// HistoryCancel is emitted when the user presses Esc.
type HistoryCancel struct{}

// HistoryModel renders the stored-conversation list with arrow-key
// navigation. Enter switches, "d" deletes, Esc cancels.
type HistoryModel struct {
	items    []HistoryItem
	cursor   int
	active   bool
	width    int
	offset   int
	pageSize int
}

// NewHistory returns a zero-value HistoryModel.
func NewHistory() HistoryModel {
	return HistoryModel{pageSize: 12}
}

// SetItems populates the picker and activates it, with the cursor on
// the active conversation.
func (m *HistoryModel) SetItems(items []HistoryItem) {
	m.items = items
	m.cursor = 0
	m.offset = 0
	m.active = true
	for i, item := range items {
		if item.Active {
			m.cursor = i
			if m.cursor >= m.pageSize {
				m.offset = m.cursor - m.pageSize + 1
			}
			break
		}
	}
}

// Clear deactivates the picker.
func (m *HistoryModel) Clear() {
	m.active = false
	m.items = nil
	m.cursor = 0
	m.offset = 0
}

// IsActive reports whether the picker is visible.
func (m HistoryModel) IsActive() bool {
	return m.active
}

// SetWidth constrains the picker to the terminal width.
func (m *HistoryModel) SetWidth(w int) {
	m.width = w
}

// Init satisfies tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input when the picker is active.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case keyMsg.Type == tea.KeyDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.pageSize {
				m.offset = m.cursor - m.pageSize + 1
			}
		}
	case keyMsg.Type == tea.KeyEnter:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.Clear()
		return m, func() tea.Msg { return HistoryChoice{ID: item.ID} }
	case keyMsg.Type == tea.KeyEsc:
		m.Clear()
		return m, func() tea.Msg { return HistoryCancel{} }
	case keyMsg.String() == "d":
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.items = append(m.items[:m.cursor], m.items[m.cursor+1:]...)
		if m.cursor >= len(m.items) && m.cursor > 0 {
			m.cursor--
		}
		return m, func() tea.Msg { return HistoryDelete{ID: item.ID} }
	}
	return m, nil
}

// View renders the picker panel.
func (m HistoryModel) View() string {
	if !m.active {
		return ""
	}

	var sb strings.Builder
	header := lipgloss.NewStyle().Foreground(style.Primary).Bold(true).Render("◈ History")
	hint := style.Faint.Render("  ↑↓ navigate · Enter open · d delete · Esc close")
	sb.WriteString(header + hint + "\n\n")

	if len(m.items) == 0 {
		sb.WriteString(style.Faint.Render("  No history yet"))
	}

	end := m.offset + m.pageSize
	if end > len(m.items) {
		end = len(m.items)
	}
	if m.offset > 0 {
		sb.WriteString(style.Faint.Render("  ↑ more above") + "\n")
	}
	for i := m.offset; i < end; i++ {
		sb.WriteString(m.renderItem(m.items[i], i == m.cursor))
		sb.WriteString("\n")
	}
	if end < len(m.items) {
		sb.WriteString(style.Faint.Render("  ↓ more below") + "\n")
	}
	sb.WriteString(style.Faint.Render(fmt.Sprintf("\n  %d conversation(s)", len(m.items))))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Border).
		Padding(0, 1)
	if m.width > 0 {
		boxStyle = boxStyle.Width(m.width - 2)
	}
	return boxStyle.Render(sb.String())
}

func (m HistoryModel) renderItem(item HistoryItem, isCursor bool) string {
	cursor := "    "
	if isCursor {
		cursor = lipgloss.NewStyle().Foreground(style.Primary).Bold(true).Render("  > ")
	}
	marker := lipgloss.NewStyle().Foreground(style.Muted).Render("○")
	if item.Active {
		marker = lipgloss.NewStyle().Foreground(style.Success).Render("●")
	}
	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	nameStyle := lipgloss.NewStyle()
	if isCursor {
		nameStyle = nameStyle.Bold(true)
	}
	meta := style.MsgMeta.Render(fmt.Sprintf("  %s · %d messages", item.Date, item.Exchanges))
	return cursor + marker + " " + nameStyle.Render(title) + meta
}
