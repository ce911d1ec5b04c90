package client

// ContractVersion is the wire contract version sent in every request
// envelope and expected in every response envelope.
const ContractVersion = "3.0.0"

// ReqContext is the context bundle accompanying every assistant request.
// Values are forwarded verbatim; the backend owns their interpretation.
type ReqContext struct {
	Platform   string
	Device     string
	VoiceInput bool
}

// requestEnvelope is the POST /api/assistant body (v3.0.0 contract).
type requestEnvelope struct {
	Version string         `json:"version"`
	Input   requestInput   `json:"input"`
	Context requestContext `json:"context"`
}

type requestInput struct {
	Message           string `json:"message"`
	SummarizedPayload any    `json:"summarized_payload"`
}

type requestContext struct {
	Platform   string `json:"platform"`
	Device     string `json:"device"`
	VoiceInput bool   `json:"voice_input"`
	SessionID  string `json:"session_id"`
}

// ResponseEnvelope is the POST /api/assistant success body. Every field
// of Result may be absent; the mapper applies defaults rather than fail.
type ResponseEnvelope struct {
	Version     string     `json:"version"`
	Status      string     `json:"status"`
	Result      WireResult `json:"result"`
	ProcessedAt string     `json:"processed_at"`
}

// WireResult is the result object inside the response envelope.
type WireResult struct {
	Type        string           `json:"type"`
	Response    string           `json:"response"`
	Task        *WireTask        `json:"task,omitempty"`
	Enforcement *WireEnforcement `json:"enforcement,omitempty"`
	Safety      *WireSafety      `json:"safety,omitempty"`
}

// WireTask mirrors exchange.Task on the wire.
type WireTask struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type WireEnforcement struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
	TraceID  string `json:"trace_id,omitempty"`
}

type WireSafety struct {
	Level string  `json:"level,omitempty"`
	Score float64 `json:"score,omitempty"`
}

// errorBody is the optional non-2xx body: either {error:{message}} or
// {detail}.
type errorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// HealthResponse from GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// SystemInfo from GET /api/system/info.
type SystemInfo struct {
	Platform         string      `json:"platform"`
	PythonVersion    string      `json:"python_version"`
	WorkingDirectory string      `json:"working_directory"`
	AvailableSpace   string      `json:"available_space"`
	MemoryUsage      MemoryUsage `json:"memory_usage"`
}

// MemoryUsage is the memory block of SystemInfo.
type MemoryUsage struct {
	Total     int64   `json:"total"`
	Available int64   `json:"available"`
	Percent   float64 `json:"percent"`
	Used      int64   `json:"used"`
}

// SystemStats from GET /api/system/stats.
type SystemStats struct {
	MemoryStats struct {
		TotalEntries int `json:"total_entries"`
		Users        int `json:"users"`
	} `json:"memory_stats"`
	TaskQueueStatus struct {
		Pending   int `json:"pending"`
		Running   int `json:"running"`
		Completed int `json:"completed"`
	} `json:"task_queue_status"`
	SafetyStats struct {
		TotalEvaluations int `json:"total_evaluations"`
		BlockedCount     int `json:"blocked_count"`
	} `json:"safety_stats"`
	PolicyViolations struct {
		Total int `json:"total"`
	} `json:"policy_violations"`
}

// TaskRequest for POST /api/tasks.
type TaskRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Agents      []string `json:"agents"`
	Priority    string   `json:"priority,omitempty"`
}

// TaskCreateResponse from POST /api/tasks.
type TaskCreateResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskStatusResponse from GET /api/tasks/{id}.
type TaskStatusResponse struct {
	TaskID string `json:"task_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
