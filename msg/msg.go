// Package msg defines the tea.Msg types dispatched within the being TUI.
package msg

import (
	"github.com/aibeing/being-tui/client"
	"github.com/aibeing/being-tui/exchange"
)

// -- Lifecycle --

// HealthResult from the initial health check.
type HealthResult struct {
	Status  string
	Version string
	Err     error
}

// -- Assistant requests --

// SendResult resolves exactly one exchange, identified by ExchangeID.
// Completions may arrive in any order; each result only touches its own
// exchange.
type SendResult struct {
	ExchangeID string
	Response   exchange.Response
	Err        error
}

// -- Auxiliary endpoints --

// SystemInfoResult from GET /api/system/info and /api/system/stats.
type SystemInfoResult struct {
	Info  *client.SystemInfo
	Stats *client.SystemStats
	Err   error
}

// TaskCreateResult from POST /api/tasks.
type TaskCreateResult struct {
	TaskID string
	Status string
	Err    error
}

// TaskStatusResult from GET /api/tasks/{id}.
type TaskStatusResult struct {
	TaskID string
	Name   string
	Status string
	Err    error
}

// -- UI events --

// TickMsg drives toast expiry and the pending spinner.
type TickMsg struct{}
