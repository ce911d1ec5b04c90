package model

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aibeing/being-tui/style"
)

// ToastLevel classifies toast severity.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastWarning
	ToastError
)

const toastTTL = 4 * time.Second

// ToastModel is the single-slot advisory notification shown after
// submission. A new toast replaces whatever was showing; nothing in the
// correctness path depends on it.
type ToastModel struct {
	message string
	level   ToastLevel
	expiry  time.Time
}

// NewToast creates an empty ToastModel.
func NewToast() ToastModel {
	return ToastModel{}
}

// Show replaces the current toast.
func (m *ToastModel) Show(message string, level ToastLevel) {
	m.message = message
	m.level = level
	m.expiry = time.Now().Add(toastTTL)
}

// Tick clears the toast once its TTL elapses. Call on every msg.TickMsg.
func (m *ToastModel) Tick() {
	if m.message != "" && !time.Now().Before(m.expiry) {
		m.message = ""
	}
}

// Visible reports whether a toast is showing.
func (m ToastModel) Visible() bool {
	return m.message != ""
}

// View renders the toast as a right-aligned colored line.
func (m ToastModel) View(termWidth int) string {
	if m.message == "" {
		return ""
	}
	icon, color := toastIconColor(m.level)
	rendered := lipgloss.NewStyle().
		Foreground(color).
		Render(" " + icon + " " + m.message + " ")
	w := lipgloss.Width(rendered)
	pad := termWidth - w
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rendered
}

func toastIconColor(level ToastLevel) (string, lipgloss.TerminalColor) {
	switch level {
	case ToastWarning:
		return "⚠", style.Warning
	case ToastError:
		return "✘", style.Error
	default:
		return "✓", style.Success
	}
}
