package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aibeing/being-tui/exchange"
	"github.com/aibeing/being-tui/style"
)

// StatusBadge renders the per-exchange status pill, e.g. "✓ COMPLETED".
func StatusBadge(st exchange.Status) string {
	icon, color := statusIconColor(st)
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(icon + " " + strings.ToUpper(string(st)))
}

func statusIconColor(st exchange.Status) (string, lipgloss.TerminalColor) {
	switch st {
	case exchange.StatusCompleted, exchange.StatusExecuted:
		return "✓", style.Success
	case exchange.StatusExecuting:
		return "⟳", style.Secondary
	case exchange.StatusPending:
		return "⏳", style.Warning
	case exchange.StatusSkipped:
		return "⊘", style.Warning
	case exchange.StatusFailed:
		return "✗", style.Error
	default:
		return "○", style.Muted
	}
}

// EnforcementNotice returns the fixed user-facing line for block and
// rewrite decisions, or "" for allow.
func EnforcementNotice(enf *exchange.Enforcement) string {
	if enf == nil {
		return ""
	}
	switch enf.Decision {
	case exchange.EnforceBlock:
		return style.ErrorText.Render("I can't help with that request. Let me know if there's something else I can do.")
	case exchange.EnforceRewrite:
		return lipgloss.NewStyle().Foreground(style.Warning).
			Render("I rephrased this to keep things safe and clear.")
	default:
		return ""
	}
}

// SafetyNotice returns a warning line for high-risk safety levels.
func SafetyNotice(s *exchange.Safety) string {
	if s == nil {
		return ""
	}
	switch s.Level {
	case exchange.SafetyBlocked, exchange.SafetyHighRisk:
		return lipgloss.NewStyle().Foreground(style.Warning).
			Render("⚠ This request was flagged by the safety layer (" + s.Level + ").")
	default:
		return ""
	}
}
