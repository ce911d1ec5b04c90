package client

import (
	"time"

	"github.com/aibeing/being-tui/exchange"
)

// MapEnvelope translates one v3.0.0 response envelope into the internal
// response model. It is pure and total: every wire field is optional and
// a missing one gets its documented default instead of a fault.
//
// The synchronous contract never reports partial execution state or
// intent confidence, so execution is fixed to "completed" and confidence
// to 1.0 until the contract grows them.
func MapEnvelope(env ResponseEnvelope) exchange.Response {
	return mapEnvelopeAt(env, time.Now)
}

func mapEnvelopeAt(env ResponseEnvelope, now func() time.Time) exchange.Response {
	result := env.Result
	isWorkflow := result.Type == "workflow"

	intent := "general"
	if isWorkflow {
		intent = "task_creation"
	}

	enforcement := &exchange.Enforcement{Decision: exchange.EnforceAllow}
	if result.Enforcement != nil {
		if result.Enforcement.Decision != "" {
			enforcement.Decision = result.Enforcement.Decision
		}
		enforcement.Reason = result.Enforcement.Reason
		enforcement.TraceID = result.Enforcement.TraceID
	}

	safety := &exchange.Safety{Score: 1.0}
	if result.Safety != nil {
		if result.Safety.Score != 0 {
			safety.Score = result.Safety.Score
		}
		if result.Safety.Level != "" {
			safety.Flags = []string{result.Safety.Level}
			safety.Level = result.Safety.Level
		}
	}

	task := mapTask(result.Task)

	decision := &exchange.Decision{
		FinalDecision: "response_generated",
		Response:      result.Response,
	}
	if isWorkflow {
		decision.TaskCreated = task
	}

	processedAt := env.ProcessedAt
	if processedAt == "" {
		processedAt = now().UTC().Format(time.RFC3339)
	}

	return exchange.Response{
		Status: "success",
		Data: exchange.Data{
			Intent:      &exchange.Intent{Intent: intent, Confidence: 1.0},
			Enforcement: enforcement,
			Safety:      safety,
			Task:        task,
			Decision:    decision,
			Execution:   &exchange.Execution{Status: exchange.ExecCompleted, Stage: "response_generation"},
			ProcessedAt: processedAt,
		},
	}
}

func mapTask(t *WireTask) *exchange.Task {
	if t == nil {
		return nil
	}
	return &exchange.Task{
		ID:          t.ID,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
