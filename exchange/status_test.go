package exchange

import "testing"

func execResp(status string) Response {
	return Response{
		Status: "success",
		Data:   Data{Execution: &Execution{Status: status}},
	}
}

func decisionResp(finalDecision string) Response {
	return Response{
		Status: "success",
		Data:   Data{Decision: &Decision{FinalDecision: finalDecision}},
	}
}

func TestResolve_TopLevelErrorWinsOverEverything(t *testing.T) {
	r := Response{
		Status: "error",
		Error:  "boom",
		Data: Data{
			Execution: &Execution{Status: ExecCompleted},
			Decision:  &Decision{FinalDecision: "response_generated"},
		},
	}
	if got := Resolve(r); got != StatusFailed {
		t.Errorf("want failed, got %s", got)
	}
	// A bare error message without status "error" still fails.
	if got := Resolve(Response{Error: "boom"}); got != StatusFailed {
		t.Errorf("error-only response: want failed, got %s", got)
	}
}

func TestResolve_ExecutionStatusCopied(t *testing.T) {
	cases := []struct {
		exec string
		want Status
	}{
		{ExecCompleted, StatusCompleted},
		{ExecExecuting, StatusExecuting},
		{ExecFailed, StatusFailed},
		{ExecSkipped, StatusSkipped},
	}
	for _, c := range cases {
		if got := Resolve(execResp(c.exec)); got != c.want {
			t.Errorf("execution %q: want %s, got %s", c.exec, c.want, got)
		}
	}
}

func TestResolve_ExecutionBeatsEnforcementBlock(t *testing.T) {
	// Execution reporting is authoritative: a completed execution with a
	// block verdict still reads completed.
	r := Response{
		Status: "success",
		Data: Data{
			Execution:   &Execution{Status: ExecCompleted},
			Enforcement: &Enforcement{Decision: EnforceBlock},
		},
	}
	if got := Resolve(r); got != StatusCompleted {
		t.Errorf("want completed, got %s", got)
	}
}

func TestResolve_UnknownExecutionStatusFallsThrough(t *testing.T) {
	r := Response{
		Status: "success",
		Data: Data{
			Execution: &Execution{Status: "queued"},
			Decision:  &Decision{FinalDecision: "response_generated"},
		},
	}
	if got := Resolve(r); got != StatusCompleted {
		t.Errorf("unknown execution status should defer to decision rules, got %s", got)
	}
}

func TestResolve_EnforcementBlockIsSkipped(t *testing.T) {
	r := Response{
		Status: "success",
		Data: Data{
			Enforcement: &Enforcement{Decision: EnforceBlock},
			Decision:    &Decision{FinalDecision: "response_generated"},
		},
	}
	if got := Resolve(r); got != StatusSkipped {
		t.Errorf("want skipped, got %s", got)
	}
}

func TestResolve_DecisionTags(t *testing.T) {
	cases := []struct {
		decision string
		want     Status
	}{
		{"task_created", StatusCompleted},
		{"task_created_and_queued", StatusCompleted},
		{"response_generated", StatusCompleted},
		{"generated", StatusCompleted},
		{"response", StatusCompleted},
		{"bhiv_core", StatusExecuting},
		{"mystery", StatusPending},
		{"", StatusPending},
	}
	for _, c := range cases {
		if got := Resolve(decisionResp(c.decision)); got != c.want {
			t.Errorf("final_decision %q: want %s, got %s", c.decision, c.want, got)
		}
	}
}

func TestResolve_EmptyResponseIsPending(t *testing.T) {
	if got := Resolve(Response{}); got != StatusPending {
		t.Errorf("want pending, got %s", got)
	}
}
