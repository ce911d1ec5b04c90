package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aibeing/being-tui/client"
	"github.com/aibeing/being-tui/style"
)

// SysInfoModel is the read-only system panel over /api/system/info and
// /api/system/stats. Fetch-and-display only; no state machine.
type SysInfoModel struct {
	info    *client.SystemInfo
	stats   *client.SystemStats
	err     string
	loading bool
	active  bool
	width   int
}

// NewSysInfo returns a zero-value SysInfoModel.
func NewSysInfo() SysInfoModel {
	return SysInfoModel{}
}

// Open activates the panel in its loading state.
func (m *SysInfoModel) Open() {
	m.active = true
	m.loading = true
	m.info = nil
	m.stats = nil
	m.err = ""
}

// Close deactivates the panel.
func (m *SysInfoModel) Close() {
	m.active = false
}

// IsActive reports whether the panel is visible.
func (m SysInfoModel) IsActive() bool {
	return m.active
}

// SetWidth constrains the panel to the terminal width.
func (m *SysInfoModel) SetWidth(w int) {
	m.width = w
}

// SetData populates the panel from the fetch result.
func (m *SysInfoModel) SetData(info *client.SystemInfo, stats *client.SystemStats, err error) {
	m.loading = false
	if err != nil {
		m.err = err.Error()
		return
	}
	m.info = info
	m.stats = stats
}

// Init satisfies tea.Model.
func (m SysInfoModel) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model; the panel is driven by setters.
func (m SysInfoModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the panel.
func (m SysInfoModel) View() string {
	if !m.active {
		return ""
	}

	var sb strings.Builder
	header := lipgloss.NewStyle().Foreground(style.Primary).Bold(true).Render("◈ System")
	sb.WriteString(header + style.Faint.Render("  Esc close") + "\n\n")

	switch {
	case m.loading:
		sb.WriteString(style.Faint.Render("  Loading…"))
	case m.err != "":
		sb.WriteString(style.ErrorText.Render("  " + m.err))
	default:
		if m.info != nil {
			sb.WriteString(fmt.Sprintf("  Platform     %s\n", m.info.Platform))
			sb.WriteString(fmt.Sprintf("  Runtime      %s\n", m.info.PythonVersion))
			sb.WriteString(fmt.Sprintf("  Workdir      %s\n", m.info.WorkingDirectory))
			sb.WriteString(fmt.Sprintf("  Disk free    %s\n", m.info.AvailableSpace))
			sb.WriteString(fmt.Sprintf("  Memory       %.0f%% used\n", m.info.MemoryUsage.Percent))
		}
		if m.stats != nil {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("  Task queue   %d pending · %d running · %d completed\n",
				m.stats.TaskQueueStatus.Pending, m.stats.TaskQueueStatus.Running, m.stats.TaskQueueStatus.Completed))
			sb.WriteString(fmt.Sprintf("  Safety       %d evaluations · %d blocked\n",
				m.stats.SafetyStats.TotalEvaluations, m.stats.SafetyStats.BlockedCount))
			sb.WriteString(fmt.Sprintf("  Violations   %d\n", m.stats.PolicyViolations.Total))
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Border).
		Padding(0, 1)
	if m.width > 0 {
		boxStyle = boxStyle.Width(m.width - 2)
	}
	return boxStyle.Render(sb.String())
}
