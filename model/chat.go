package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aibeing/being-tui/exchange"
	"github.com/aibeing/being-tui/markdown"
	"github.com/aibeing/being-tui/style"
)

// spinnerFrames animates the pending indicator; advanced once per tick.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ChatModel is a scrollable viewport over the active conversation's
// exchanges. It holds no exchange state of its own: SetExchanges is
// called with the store's snapshot after every mutation, and each
// exchange's status is derived at render time.
type ChatModel struct {
	vp        viewport.Model
	exchanges []exchange.Exchange
	width     int
	height    int
	frame     int
	system    []string // transient system lines shown after the transcript
}

// NewChat constructs a ChatModel sized to width x height.
func NewChat(width, height int) ChatModel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return ChatModel{
		vp:     vp,
		width:  width,
		height: height,
	}
}

// SetExchanges replaces the rendered exchange list and scrolls to the
// bottom.
func (m *ChatModel) SetExchanges(exchanges []exchange.Exchange) {
	m.exchanges = exchanges
	m.refresh()
}

// AddSystemLine appends a dimmed system message below the transcript.
func (m *ChatModel) AddSystemLine(text string) {
	m.system = append(m.system, text)
	m.refresh()
}

// ClearSystemLines drops the transient system messages.
func (m *ChatModel) ClearSystemLines() {
	m.system = nil
	m.refresh()
}

// Tick advances the pending spinner.
func (m *ChatModel) Tick() {
	m.frame = (m.frame + 1) % len(spinnerFrames)
	m.refresh()
}

// SetSize resizes the underlying viewport.
func (m *ChatModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// ScrollToTop jumps to the beginning of the transcript.
func (m *ChatModel) ScrollToTop() { m.vp.GotoTop() }

// ScrollToBottom jumps to the newest exchange.
func (m *ChatModel) ScrollToBottom() { m.vp.GotoBottom() }

// Init satisfies tea.Model.
func (m ChatModel) Init() tea.Cmd {
	return nil
}

// Update forwards keyboard and mouse events to the viewport.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View returns the rendered viewport content.
func (m ChatModel) View() string {
	return m.vp.View()
}

func (m *ChatModel) refresh() {
	m.vp.SetContent(m.renderAll())
	m.vp.GotoBottom()
}

func (m *ChatModel) renderAll() string {
	if len(m.exchanges) == 0 && len(m.system) == 0 {
		return style.Faint.Render("  Start a conversation. Type below, or / for commands.")
	}

	var sb strings.Builder
	for i, e := range m.exchanges {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.renderExchange(e))
	}
	for _, line := range m.system {
		sb.WriteString("\n")
		sb.WriteString(style.Faint.Render(line))
	}
	return sb.String()
}

// renderExchange renders the user bubble followed by the assistant
// outcome: status badge, enforcement/safety notices, response text and
// the created-task card when present.
func (m *ChatModel) renderExchange(e exchange.Exchange) string {
	var sb strings.Builder
	sb.WriteString(style.UserLabel.Render("❯ You"))
	sb.WriteString("\n")
	sb.WriteString(e.UserText)
	sb.WriteString("\n\n")

	if e.Pending {
		sb.WriteString(style.AgentLabel.Render("◈ Being"))
		sb.WriteString(" ")
		sb.WriteString(StatusBadge(exchange.StatusPending))
		sb.WriteString("\n")
		sb.WriteString(style.SpinnerStyle.Render(spinnerFrames[m.frame]) + style.Faint.Render(" thinking…"))
		return sb.String()
	}

	resp := e.Response
	if resp == nil {
		// Resolved with nothing attached; render as a plain failure.
		sb.WriteString(StatusBadge(exchange.StatusFailed))
		if e.Err != "" {
			sb.WriteString("\n" + style.ErrorText.Render(e.Err))
		}
		return sb.String()
	}

	st := exchange.Resolve(*resp)
	sb.WriteString(style.AgentLabel.Render("◈ Being"))
	sb.WriteString(" ")
	sb.WriteString(StatusBadge(st))

	if notice := EnforcementNotice(resp.Data.Enforcement); notice != "" {
		sb.WriteString("\n" + notice)
	}
	if notice := SafetyNotice(resp.Data.Safety); notice != "" {
		sb.WriteString("\n" + notice)
	}

	if resp.Status == "error" {
		sb.WriteString("\n" + style.ErrorText.Render(resp.Error))
		return sb.String()
	}

	if text := displayResponseText(resp.Data); text != "" {
		sb.WriteString("\n" + markdown.Render(text, m.width-4))
	}
	if task := createdTask(resp.Data); task != nil {
		sb.WriteString("\n" + renderTaskCard(task))
	}
	if exec := resp.Data.Execution; exec != nil && exec.Error != "" {
		sb.WriteString("\n" + style.ErrorText.Render(exec.Error))
	}
	return sb.String()
}

// displayResponseText picks the assistant text to show. Blocked requests
// show no response body; placeholder workflow replies are substituted
// with a task summary.
func displayResponseText(d exchange.Data) string {
	if d.Enforcement != nil && d.Enforcement.Decision == exchange.EnforceBlock {
		return ""
	}
	text := ""
	if d.Decision != nil {
		text = d.Decision.Response
	}
	task := createdTask(d)
	if task != nil && (text == "Task processed successfully" || text == "No response generated") {
		if task.Description != "" {
			return "I created a task: " + task.Description
		}
		return "I created a task for you."
	}
	return text
}

func createdTask(d exchange.Data) *exchange.Task {
	if d.Decision == nil {
		return nil
	}
	return d.Decision.TaskCreated
}

// renderTaskCard renders the created-task line under a workflow reply.
func renderTaskCard(t *exchange.Task) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(style.Connector.Render("⎿"))
	sb.WriteString("  ")
	sb.WriteString(style.TaskDone.Render("✔"))
	sb.WriteString(" ")
	sb.WriteString(fmt.Sprintf("Task #%d: %s", t.ID, t.Description))
	if t.Status != "" {
		sb.WriteString(style.MsgMeta.Render(" · " + t.Status))
	}
	return sb.String()
}
