// Package exchange models one user submission and its eventually-resolved
// assistant outcome, including the multi-stage pipeline data the backend
// reports (intent, enforcement, safety, execution, final decision).
package exchange

// Enforcement decisions.
const (
	EnforceAllow   = "allow"
	EnforceRewrite = "rewrite"
	EnforceBlock   = "block"
)

// Safety levels.
const (
	SafetySafe     = "safe"
	SafetySoftRisk = "soft_risk"
	SafetyHighRisk = "high_risk"
	SafetyBlocked  = "blocked"
)

// Execution stages.
const (
	ExecExecuting = "executing"
	ExecCompleted = "completed"
	ExecFailed    = "failed"
	ExecSkipped   = "skipped"
)

// Response is the normalized assistant result attached to an Exchange.
// Status is "success" or "error"; on error Data is empty and Error holds
// the user-facing message.
type Response struct {
	Status string `json:"status"`
	Data   Data   `json:"data"`
	Error  string `json:"error,omitempty"`
}

// Data carries the independently-populated pipeline sub-records. Every
// field is optional; consumers must tolerate any of them being nil.
type Data struct {
	Intent      *Intent      `json:"intent,omitempty"`
	Task        *Task        `json:"task,omitempty"`
	Decision    *Decision    `json:"decision,omitempty"`
	Enforcement *Enforcement `json:"enforcement,omitempty"`
	Safety      *Safety      `json:"safety,omitempty"`
	Execution   *Execution   `json:"execution,omitempty"`
	ProcessedAt string       `json:"processed_at,omitempty"`
}

// Intent is the classified intent of the user message.
type Intent struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Task is a backend-created task. Read-only from the client's perspective.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Decision describes which downstream path produced the response.
type Decision struct {
	FinalDecision string `json:"final_decision"`
	Response      string `json:"response,omitempty"`
	TaskCreated   *Task  `json:"task_created,omitempty"`
}

// Enforcement is the policy-check outcome for the request.
type Enforcement struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
	TraceID  string `json:"trace_id,omitempty"`
}

// Safety is the coarse risk classification, independent of enforcement.
type Safety struct {
	Level string   `json:"level,omitempty"`
	Score float64  `json:"score,omitempty"`
	Flags []string `json:"flags,omitempty"`
}

// Execution reports server-observed execution progress.
type Execution struct {
	Status string `json:"status"`
	Stage  string `json:"stage,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse builds the Response shape every failure path attaches to
// its Exchange: status "error", empty data, the given message.
func ErrorResponse(message string) Response {
	return Response{Status: "error", Error: message}
}
