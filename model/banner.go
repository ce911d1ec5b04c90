package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aibeing/being-tui/style"
)

// BannerModel renders the one-line header:
//
//	AI Being v3.0.0 · Your unified assistant
type BannerModel struct {
	version string
}

// NewBanner returns a BannerModel with a default version string.
func NewBanner() BannerModel {
	return BannerModel{version: "v3.0.0"}
}

// SetVersion sets the backend-reported contract version.
func (m *BannerModel) SetVersion(v string) {
	if v != "" {
		m.version = v
	}
}

// Init satisfies tea.Model. The banner requires no I/O on start.
func (m BannerModel) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model. The banner is static.
func (m BannerModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the banner line.
func (m BannerModel) View() string {
	muted := lipgloss.NewStyle().Foreground(style.Muted)
	title := style.BannerTitle.Render(fmt.Sprintf("AI Being %s", m.version))
	return title + muted.Render(" · ") + style.BannerDetail.Render("Your unified assistant")
}
