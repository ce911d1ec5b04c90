// Package app wires the execution pipeline to the terminal UI: one
// bubbletea Model owning the execution store, the conversation registry
// and every view component.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aibeing/being-tui/client"
	"github.com/aibeing/being-tui/exchange"
	"github.com/aibeing/being-tui/history"
	"github.com/aibeing/being-tui/model"
	"github.com/aibeing/being-tui/msg"
	"github.com/aibeing/being-tui/style"
)

type retryHealth struct{}

// slashCommands is the local command list offered for tab completion.
var slashCommands = []string{
	"/help", "/new", "/history", "/system", "/task", "/taskstatus", "/exit", "/quit",
}

// Model is the root bubbletea model.
//
// The active conversation id is explicit session state carried here and
// passed to the registry on every sync; nothing global tracks it.
type Model struct {
	banner     model.BannerModel
	chat       model.ChatModel
	input      model.InputModel
	toast      model.ToastModel
	statusLine model.StatusLineModel
	picker     model.HistoryModel
	sysinfo    model.SysInfoModel

	state       State
	client      *client.Client
	store       *exchange.Store
	registry    *history.Registry
	activeConv  string
	reqCtx      client.ReqContext
	width       int
	height      int
	keys        KeyMap
	confirmQuit bool
	ticking     bool
}

// New constructs the root model around a client, an execution store and
// a conversation registry.
func New(c *client.Client, store *exchange.Store, registry *history.Registry) Model {
	sl := model.NewStatusLine()
	sl.SetBackend(c.BaseURL)
	sl.SetConversationCount(registry.Len())
	input := model.NewInput()
	input.SetCommands(slashCommands)
	return Model{
		banner:     model.NewBanner(),
		chat:       model.NewChat(80, 20),
		input:      input,
		toast:      model.NewToast(),
		statusLine: sl,
		picker:     model.NewHistory(),
		sysinfo:    model.NewSysInfo(),
		state:      StateConnecting,
		client:     c,
		store:      store,
		registry:   registry,
		reqCtx:     client.ReqContext{Platform: "terminal", Device: "desktop"},
		keys:       DefaultKeyMap(),
		width:      80,
		height:     24,
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkHealth(), m.input.Init(), tea.WindowSize())
}

// Update satisfies tea.Model.
func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.chat.SetSize(v.Width, m.chatHeight())
		m.picker.SetWidth(v.Width)
		m.sysinfo.SetWidth(v.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(v)
	case msg.HealthResult:
		return m.handleHealth(v)
	case msg.SendResult:
		return m.handleSendResult(v)
	case msg.SystemInfoResult:
		m.sysinfo.SetData(v.Info, v.Stats, v.Err)
		return m, nil
	case msg.TaskCreateResult:
		if v.Err != nil {
			m.toast.Show("Task creation failed", model.ToastError)
		} else {
			m.chat.AddSystemLine(fmt.Sprintf("Task %s submitted (%s)", v.TaskID, v.Status))
		}
		return m, m.startTicker()
	case msg.TaskStatusResult:
		if v.Err != nil {
			m.toast.Show("Task lookup failed", model.ToastError)
		} else {
			m.chat.AddSystemLine(fmt.Sprintf("Task %s: %s · %s", v.TaskID, v.Name, v.Status))
		}
		return m, m.startTicker()
	case model.HistoryChoice:
		return m.switchConversation(v.ID)
	case model.HistoryDelete:
		return m.deleteConversation(v.ID)
	case model.HistoryCancel:
		m.state = StateIdle
		return m, m.input.Focus()
	case retryHealth:
		return m, m.checkHealth()
	case msg.TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// View satisfies tea.Model.
func (m Model) View() string {
	var sections []string
	switch m.state {
	case StateConnecting:
		sections = append(sections, m.banner.View())
		sections = append(sections, "")
		sections = append(sections, style.Faint.Render("  Connecting to the assistant backend…"))
	case StateHistory:
		sections = append(sections, m.banner.View())
		sections = append(sections, m.picker.View())
	case StateSystem:
		sections = append(sections, m.banner.View())
		sections = append(sections, m.sysinfo.View())
	default:
		sections = append(sections, m.banner.View())
		sections = append(sections, m.chat.View())
		sections = append(sections, m.statusLine.View())
		sections = append(sections, m.input.View())
	}
	if m.toast.Visible() {
		sections = append(sections, m.toast.View(m.width))
	}
	if m.confirmQuit {
		sections = append(sections, "\n  Press Ctrl+C again to quit, or any key to cancel.")
	}
	return strings.Join(sections, "\n")
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		if key.Matches(k, m.keys.Cancel) {
			return m, tea.Quit
		}
		m.confirmQuit = false
		return m, nil
	}
	switch m.state {
	case StateHistory:
		updated, cmd := m.picker.Update(k)
		if p, ok := updated.(model.HistoryModel); ok {
			m.picker = p
		}
		return m, cmd
	case StateSystem:
		if key.Matches(k, m.keys.Escape) || key.Matches(k, m.keys.Cancel) {
			m.sysinfo.Close()
			m.state = StateIdle
			return m, m.input.Focus()
		}
		return m, nil
	case StateConnecting:
		if key.Matches(k, m.keys.Cancel) || key.Matches(k, m.keys.QuitEOF) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m.handleIdleKey(k)
}

func (m Model) handleIdleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Escape):
		m.input.Reset()
		return m, nil
	case key.Matches(k, m.keys.Cancel):
		if m.input.Value() == "" {
			m.confirmQuit = true
			return m, nil
		}
		m.input.Reset()
		return m, nil
	case key.Matches(k, m.keys.QuitEOF):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
	case key.Matches(k, m.keys.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Submit(text)
		return m.submitInput(text)
	case key.Matches(k, m.keys.NewChat):
		return m.newConversation()
	case key.Matches(k, m.keys.History):
		return m.openHistory()
	case key.Matches(k, m.keys.ScrollTop):
		m.chat.ScrollToTop()
		return m, nil
	case key.Matches(k, m.keys.ScrollBottom):
		m.chat.ScrollToBottom()
		return m, nil
	case key.Matches(k, m.keys.ClearInput):
		m.input.Reset()
		return m, nil
	case key.Matches(k, m.keys.PageUp), key.Matches(k, m.keys.PageDown):
		updated, cmd := m.chat.Update(k)
		if c, ok := updated.(model.ChatModel); ok {
			m.chat = c
		}
		return m, cmd
	}
	updated, cmd := m.input.Update(k)
	if inp, ok := updated.(model.InputModel); ok {
		m.input = inp
	}
	return m, cmd
}

// submitInput routes slash commands locally and sends everything else to
// the assistant. A submitted message appends a pending exchange first so
// it renders before any network activity, then the send command resolves
// it by id. Further submissions are allowed while requests are in
// flight; each resolves independently.
func (m Model) submitInput(text string) (Model, tea.Cmd) {
	switch {
	case text == "/exit" || text == "/quit":
		return m, tea.Quit
	case text == "/help":
		m.chat.AddSystemLine(helpText())
		return m, nil
	case text == "/new":
		return m.newConversation()
	case text == "/history":
		return m.openHistory()
	case text == "/system":
		return m.openSystem()
	case strings.HasPrefix(text, "/taskstatus"):
		arg := strings.TrimSpace(strings.TrimPrefix(text, "/taskstatus"))
		if arg == "" {
			m.chat.AddSystemLine("Usage: /taskstatus <id>")
			return m, nil
		}
		return m, m.fetchTaskStatus(arg)
	case strings.HasPrefix(text, "/task"):
		arg := strings.TrimSpace(strings.TrimPrefix(text, "/task"))
		if arg == "" {
			m.chat.AddSystemLine("Usage: /task <description>")
			return m, nil
		}
		return m, m.createTask(arg)
	case strings.HasPrefix(text, "/"):
		m.chat.AddSystemLine("Unknown command. /help lists commands.")
		return m, nil
	}

	id := m.store.Append(text)
	m.syncActive()
	m.chat.SetExchanges(m.store.Exchanges())
	m.statusLine.SetInFlight(m.store.Pending())
	m.toast.Show("Message sent", model.ToastInfo)
	return m, tea.Batch(m.send(id, text), m.startTicker())
}

// handleSendResult resolves exactly one exchange. Every failure kind
// lands the same way: pending cleared, error message attached, response
// marked "error".
func (m Model) handleSendResult(r msg.SendResult) (Model, tea.Cmd) {
	if r.Err != nil {
		m.store.Fail(r.ExchangeID, r.Err.Error())
		m.toast.Show("Request failed", model.ToastError)
	} else {
		m.store.Resolve(r.ExchangeID, r.Response)
	}
	m.syncActive()
	m.chat.SetExchanges(m.store.Exchanges())
	m.statusLine.SetInFlight(m.store.Pending())
	return m, m.startTicker()
}

func (m Model) handleHealth(h msg.HealthResult) (Model, tea.Cmd) {
	if h.Err != nil {
		m.statusLine.SetOnline(false)
		if m.state == StateConnecting {
			return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg { return retryHealth{} })
		}
		return m, nil
	}
	m.statusLine.SetOnline(true)
	m.banner.SetVersion(h.Version)
	if m.state == StateConnecting {
		m.state = StateIdle
		m.chat.SetSize(m.width, m.chatHeight())
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleTick() (Model, tea.Cmd) {
	m.toast.Tick()
	if m.store.Pending() > 0 {
		m.chat.Tick()
	}
	if m.store.Pending() > 0 || m.toast.Visible() {
		return m, tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return msg.TickMsg{} })
	}
	m.ticking = false
	return m, nil
}

// startTicker schedules the UI tick unless one is already running.
func (m *Model) startTicker() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return msg.TickMsg{} })
}

// syncActive records the store snapshot into the registry, creating the
// conversation on first submission.
func (m *Model) syncActive() {
	m.activeConv = m.registry.Sync(m.activeConv, m.store.Exchanges())
	m.statusLine.SetConversationCount(m.registry.Len())
}

func (m Model) newConversation() (Model, tea.Cmd) {
	m.store.Reset()
	m.activeConv = ""
	m.chat.ClearSystemLines()
	m.chat.SetExchanges(nil)
	m.statusLine.SetInFlight(0)
	m.toast.Show("New conversation", model.ToastInfo)
	return m, tea.Batch(m.input.Focus(), m.startTicker())
}

func (m Model) openHistory() (Model, tea.Cmd) {
	var items []model.HistoryItem
	for _, c := range m.registry.Conversations() {
		items = append(items, model.HistoryItem{
			ID:        c.ID,
			Title:     c.Title,
			Date:      c.Timestamp.Format("2006-01-02 15:04"),
			Exchanges: len(c.Exchanges),
			Active:    c.ID == m.activeConv,
		})
	}
	m.picker.SetItems(items)
	m.state = StateHistory
	m.input.Blur()
	return m, nil
}

func (m Model) switchConversation(id string) (Model, tea.Cmd) {
	conv, ok := m.registry.Get(id)
	if !ok {
		m.state = StateIdle
		return m, m.input.Focus()
	}
	m.activeConv = id
	m.store.Load(conv.Exchanges)
	m.chat.ClearSystemLines()
	m.chat.SetExchanges(m.store.Exchanges())
	m.statusLine.SetInFlight(m.store.Pending())
	m.state = StateIdle
	return m, m.input.Focus()
}

// deleteConversation removes a conversation; deleting the active one
// transitions to the no-active-conversation state, as if starting fresh.
func (m Model) deleteConversation(id string) (Model, tea.Cmd) {
	m.registry.Delete(id)
	m.statusLine.SetConversationCount(m.registry.Len())
	if id == m.activeConv {
		m.activeConv = ""
		m.store.Reset()
		m.chat.SetExchanges(nil)
		m.statusLine.SetInFlight(0)
	}
	return m, nil
}

func (m Model) openSystem() (Model, tea.Cmd) {
	m.sysinfo.Open()
	m.state = StateSystem
	m.input.Blur()
	return m, m.fetchSystemInfo()
}

// -- Commands --

func (m Model) checkHealth() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		health, err := c.Health()
		if err != nil {
			return msg.HealthResult{Err: err}
		}
		return msg.HealthResult{Status: health.Status, Version: health.Version}
	}
}

func (m Model) send(exchangeID, text string) tea.Cmd {
	c := m.client
	rc := m.reqCtx
	return func() tea.Msg {
		resp, err := c.Send(text, rc)
		if err != nil {
			return msg.SendResult{ExchangeID: exchangeID, Err: err}
		}
		return msg.SendResult{ExchangeID: exchangeID, Response: resp}
	}
}

func (m Model) fetchSystemInfo() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		info, err := c.GetSystemInfo()
		if err != nil {
			return msg.SystemInfoResult{Err: err}
		}
		stats, err := c.GetSystemStats()
		if err != nil {
			return msg.SystemInfoResult{Info: info, Err: err}
		}
		return msg.SystemInfoResult{Info: info, Stats: stats}
	}
}

func (m Model) createTask(description string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		resp, err := c.CreateTask(client.TaskRequest{
			Name:        history.DeriveTitle(description),
			Description: description,
			Agents:      []string{"assistant"},
		})
		if err != nil {
			return msg.TaskCreateResult{Err: err}
		}
		return msg.TaskCreateResult{TaskID: resp.TaskID, Status: resp.Status}
	}
}

func (m Model) fetchTaskStatus(id string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		resp, err := c.TaskStatus(id)
		if err != nil {
			return msg.TaskStatusResult{TaskID: id, Err: err}
		}
		return msg.TaskStatusResult{TaskID: resp.TaskID, Name: resp.Name, Status: resp.Status}
	}
}

// chatHeight calculates the lines available for the chat viewport.
func (m Model) chatHeight() int {
	reserved := 4 // banner + status line + input + spacing
	h := m.height - reserved
	if h < 5 {
		h = 5
	}
	return h
}

func helpText() string {
	return `Commands:
  /help         Show this help
  /new          Start a new conversation
  /history      Browse stored conversations
  /system       Backend system info
  /task <text>  Create a background task
  /taskstatus <id>  Check a task
  /exit         Quit

Keybindings:
  Enter    Submit message
  Ctrl+N   New conversation
  Ctrl+H   History
  Ctrl+U   Clear input
  Ctrl+C   Quit
  Home/End PgUp/PgDn  Scroll`
}
