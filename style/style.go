package style

import "github.com/charmbracelet/lipgloss"

// Colors are populated from the active theme, dark by default.
var (
	Primary   lipgloss.TerminalColor
	Secondary lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	Dim       lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
)

// Derived styles. Rebuilt whenever the theme changes.
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style

	// Banner
	BannerTitle  lipgloss.Style
	BannerDetail lipgloss.Style

	// Prompt
	PromptChar lipgloss.Style

	// Chat
	UserLabel    lipgloss.Style
	AgentLabel   lipgloss.Style
	SpinnerStyle lipgloss.Style

	// Task card
	TaskDone  lipgloss.Style
	Connector lipgloss.Style

	// Status line
	StatusBar    lipgloss.Style
	StatusSignal lipgloss.Style

	// Hint text (shortcut legends)
	Hint lipgloss.Style

	// Message metadata (timestamps, counts)
	MsgMeta lipgloss.Style
)

func init() {
	apply(darkTheme)
}

func apply(t Theme) {
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border

	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	BannerTitle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	BannerDetail = lipgloss.NewStyle().
		Foreground(Muted)

	PromptChar = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	UserLabel = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
	AgentLabel = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(Primary)

	TaskDone = lipgloss.NewStyle().Foreground(Success)
	Connector = lipgloss.NewStyle().Foreground(Muted)

	StatusBar = lipgloss.NewStyle().
		Foreground(Muted).
		PaddingLeft(1)
	StatusSignal = lipgloss.NewStyle().
		Foreground(Secondary)

	Hint = lipgloss.NewStyle().Foreground(Dim)

	MsgMeta = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)
}
