// Package client is the HTTP gateway to the AI Being assistant backend:
// it owns the v3.0.0 wire contract, the request timeout policy, the
// failure taxonomy, and the envelope-to-model mapping.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aibeing/being-tui/exchange"
)

// requestTimeout is the hard upper bound on any assistant call. A request
// that exceeds it is abandoned; there is no retry.
const requestTimeout = 90 * time.Second

// Client talks to the assistant backend.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// New constructs a Client with the fixed request timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Send submits one user message and returns the mapped response. On any
// failure the returned error is a *Failure carrying a user-safe message;
// raw transport errors never escape. Send has no side effects beyond the
// network call; resolving the owning exchange is the caller's job.
func (c *Client) Send(message string, rc ReqContext) (exchange.Response, error) {
	payload := requestEnvelope{
		Version: ContractVersion,
		Input:   requestInput{Message: message, SummarizedPayload: nil},
		Context: requestContext{
			Platform:   rc.Platform,
			Device:     rc.Device,
			VoiceInput: rc.VoiceInput,
			SessionID:  "default",
		},
	}

	resp, err := c.postJSON("/api/assistant", payload)
	if err != nil {
		return exchange.Response{}, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body errorBody
		json.NewDecoder(resp.Body).Decode(&body) //nolint:errcheck
		return exchange.Response{}, &Failure{
			Kind:    RemoteRejected,
			Message: rejectionMessage(body, resp.StatusCode),
		}
	}

	var env ResponseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return exchange.Response{}, &Failure{Kind: MapperFault, Message: genericMessage}
	}
	if env.Status == "error" {
		msg := env.Result.Response
		if msg == "" {
			msg = genericMessage
		}
		return exchange.Response{}, &Failure{Kind: RemoteError, Message: msg}
	}
	return MapEnvelope(env), nil
}

// Health checks backend reachability via GET /health.
func (c *Client) Health() (*HealthResponse, error) {
	resp, err := c.get("/health")
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &health, nil
}

// GetSystemInfo fetches GET /api/system/info.
func (c *Client) GetSystemInfo() (*SystemInfo, error) {
	resp, err := c.get("/api/system/info")
	if err != nil {
		return nil, fmt.Errorf("system info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var info SystemInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode system info: %w", err)
	}
	return &info, nil
}

// GetSystemStats fetches GET /api/system/stats.
func (c *Client) GetSystemStats() (*SystemStats, error) {
	resp, err := c.get("/api/system/stats")
	if err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var stats SystemStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("decode system stats: %w", err)
	}
	return &stats, nil
}

// CreateTask submits a task for multi-agent processing via POST /api/tasks.
func (c *Client) CreateTask(req TaskRequest) (*TaskCreateResponse, error) {
	resp, err := c.postJSON("/api/tasks", req)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}
	var result TaskCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &result, nil
}

// TaskStatus fetches GET /api/tasks/{id}.
func (c *Client) TaskStatus(taskID string) (*TaskStatusResponse, error) {
	resp, err := c.get("/api/tasks/" + taskID)
	if err != nil {
		return nil, fmt.Errorf("task status: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var result TaskStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode task status: %w", err)
	}
	return &result, nil
}

func (c *Client) get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) postJSON(path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}
}

func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr errorBody
	json.Unmarshal(body, &apiErr) //nolint:errcheck
	return fmt.Errorf("API %d: %s", resp.StatusCode, rejectionMessage(apiErr, resp.StatusCode))
}
