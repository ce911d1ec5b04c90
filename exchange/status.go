package exchange

import "strings"

// Status is the single user-facing state derived from a Response.
type Status string

const (
	StatusExecuted  Status = "executed"
	StatusCompleted Status = "completed"
	StatusExecuting Status = "executing"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// statusRule is one entry of the ordered decision table in Resolve.
// match returns the derived status and true when the rule applies.
type statusRule struct {
	name  string
	match func(r Response) (Status, bool)
}

// statusRules is evaluated top to bottom; the first match wins. The order
// is load-bearing: execution-stage data is authoritative when present,
// enforcement and decision-tag heuristics only cover contract versions
// that omit execution reporting. Do not reorder.
var statusRules = []statusRule{
	{"top-level error", func(r Response) (Status, bool) {
		if r.Status == "error" || r.Error != "" {
			return StatusFailed, true
		}
		return "", false
	}},
	{"execution stage", func(r Response) (Status, bool) {
		if e := r.Data.Execution; e != nil {
			switch e.Status {
			case ExecCompleted:
				return StatusCompleted, true
			case ExecExecuting:
				return StatusExecuting, true
			case ExecFailed:
				return StatusFailed, true
			case ExecSkipped:
				return StatusSkipped, true
			}
		}
		return "", false
	}},
	{"enforcement block", func(r Response) (Status, bool) {
		if enf := r.Data.Enforcement; enf != nil && enf.Decision == EnforceBlock {
			return StatusSkipped, true
		}
		return "", false
	}},
	{"task created", func(r Response) (Status, bool) {
		if strings.Contains(finalDecision(r), "task_created") {
			return StatusCompleted, true
		}
		return "", false
	}},
	{"response generated", func(r Response) (Status, bool) {
		fd := finalDecision(r)
		if strings.Contains(fd, "generated") || strings.Contains(fd, "response") {
			return StatusCompleted, true
		}
		return "", false
	}},
	{"core routing", func(r Response) (Status, bool) {
		if finalDecision(r) == "bhiv_core" {
			return StatusExecuting, true
		}
		return "", false
	}},
}

// Resolve collapses a Response's enforcement, safety, execution and
// decision fields into one status. It is pure and never stored; callers
// evaluate it at render time.
func Resolve(r Response) Status {
	for _, rule := range statusRules {
		if st, ok := rule.match(r); ok {
			return st
		}
	}
	return StatusPending
}

func finalDecision(r Response) string {
	if r.Data.Decision == nil {
		return ""
	}
	return r.Data.Decision.FinalDecision
}
