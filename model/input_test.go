package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func updated(t *testing.T, m tea.Model, msg tea.Msg) InputModel {
	t.Helper()
	next, _ := m.Update(msg)
	in, ok := next.(InputModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return in
}

func TestInput_HistoryNavigation(t *testing.T) {
	m := NewInput()
	m.Submit("first")
	m.Submit("second")

	m = updated(t, m, keyMsg(tea.KeyUp))
	if m.Value() != "second" {
		t.Errorf("one Up: want %q, got %q", "second", m.Value())
	}
	m = updated(t, m, keyMsg(tea.KeyUp))
	if m.Value() != "first" {
		t.Errorf("two Up: want %q, got %q", "first", m.Value())
	}
	// Past the oldest entry it stays put.
	m = updated(t, m, keyMsg(tea.KeyUp))
	if m.Value() != "first" {
		t.Errorf("Up at oldest: want %q, got %q", "first", m.Value())
	}
	m = updated(t, m, keyMsg(tea.KeyDown))
	if m.Value() != "second" {
		t.Errorf("Down: want %q, got %q", "second", m.Value())
	}
	// Past the newest entry the buffer clears.
	m = updated(t, m, keyMsg(tea.KeyDown))
	if m.Value() != "" {
		t.Errorf("Down past newest: want empty, got %q", m.Value())
	}
}

func TestInput_TabCompletionCycles(t *testing.T) {
	m := NewInput()
	m.SetCommands([]string{"/help", "/history", "/new"})
	m.SetValue("/h")

	m = updated(t, m, keyMsg(tea.KeyTab))
	if m.Value() != "/help" {
		t.Errorf("first Tab: want /help, got %q", m.Value())
	}
	m = updated(t, m, keyMsg(tea.KeyTab))
	if m.Value() != "/history" {
		t.Errorf("second Tab: want /history, got %q", m.Value())
	}
	m = updated(t, m, keyMsg(tea.KeyTab))
	if m.Value() != "/help" {
		t.Errorf("third Tab wraps: want /help, got %q", m.Value())
	}
}

func TestInput_TabIgnoredWithoutSlash(t *testing.T) {
	m := NewInput()
	m.SetCommands([]string{"/help"})
	m.SetValue("hello")
	m = updated(t, m, keyMsg(tea.KeyTab))
	if m.Value() != "hello" {
		t.Errorf("Tab must not touch plain text, got %q", m.Value())
	}
}

func TestInput_SubmitClearsBuffer(t *testing.T) {
	m := NewInput()
	m.SetValue("hello")
	m.Submit("hello")
	if m.Value() != "" {
		t.Errorf("Submit must clear the buffer, got %q", m.Value())
	}
}
