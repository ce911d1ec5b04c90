package model

import (
	"strings"
	"testing"

	"github.com/aibeing/being-tui/exchange"
)

func workflowData(description string, response string) exchange.Data {
	task := &exchange.Task{ID: 7, Description: description, Status: "pending"}
	return exchange.Data{
		Task:     task,
		Decision: &exchange.Decision{FinalDecision: "task_created", Response: response, TaskCreated: task},
	}
}

func TestDisplayResponseText(t *testing.T) {
	cases := []struct {
		name string
		data exchange.Data
		want string
	}{
		{
			"plain response passes through",
			exchange.Data{Decision: &exchange.Decision{Response: "Here you go."}},
			"Here you go.",
		},
		{
			"blocked request shows nothing",
			exchange.Data{
				Decision:    &exchange.Decision{Response: "secret stuff"},
				Enforcement: &exchange.Enforcement{Decision: exchange.EnforceBlock},
			},
			"",
		},
		{
			"workflow placeholder replaced with task summary",
			workflowData("call mom", "Task processed successfully"),
			"I created a task: call mom",
		},
		{
			"no-response placeholder replaced with task summary",
			workflowData("call mom", "No response generated"),
			"I created a task: call mom",
		},
		{
			"workflow with real response keeps it",
			workflowData("call mom", "Done! I scheduled a reminder."),
			"Done! I scheduled a reminder.",
		},
		{
			"nil decision yields nothing",
			exchange.Data{},
			"",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := displayResponseText(c.data); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestRenderExchange_PendingShowsSpinner(t *testing.T) {
	m := NewChat(80, 20)
	out := m.renderExchange(exchange.Exchange{UserText: "hi", Pending: true})
	if !strings.Contains(out, "hi") {
		t.Error("user text missing from pending render")
	}
	if !strings.Contains(out, "thinking") {
		t.Error("pending render must show the thinking indicator")
	}
	if !strings.Contains(out, "PENDING") {
		t.Error("pending render must show the pending badge")
	}
}

func TestRenderExchange_FailureShowsErrorText(t *testing.T) {
	m := NewChat(80, 20)
	resp := exchange.ErrorResponse("Request timed out. Please try again.")
	out := m.renderExchange(exchange.Exchange{
		UserText: "hi",
		Response: &resp,
		Err:      resp.Error,
	})
	if !strings.Contains(out, "FAILED") {
		t.Error("failure render must show the failed badge")
	}
	if !strings.Contains(out, "Request timed out") {
		t.Error("failure render must show the error message")
	}
}

func TestRenderExchange_TaskCard(t *testing.T) {
	m := NewChat(80, 20)
	resp := exchange.Response{Status: "success", Data: workflowData("water the plants", "Task processed successfully")}
	out := m.renderExchange(exchange.Exchange{UserText: "remind me", Response: &resp})
	if !strings.Contains(out, "Task #7: water the plants") {
		t.Errorf("task card missing:\n%s", out)
	}
	if !strings.Contains(out, "I created a task: water the plants") {
		t.Errorf("task summary missing:\n%s", out)
	}
	if !strings.Contains(out, "COMPLETED") {
		t.Errorf("task_created decision must resolve to completed:\n%s", out)
	}
}
