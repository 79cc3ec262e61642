package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dlmaster/download-master/internal/model"
)

// DefaultTimeout bounds every backend request
const DefaultTimeout = 15 * time.Second

// APIError is a backend rejection: a non-success status with a decoded
// {"error": ...} payload when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend rejected request (%d)", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404 rejection
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// StartResult is the ack returned by the start endpoint. The backend does not
// return the full task record; the caller learns about the new task through
// the next refresh.
type StartResult struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// BulkResult is the ack returned by the bulk start endpoint
type BulkResult struct {
	Success bool     `json:"success"`
	TaskIDs []string `json:"task_ids"`
	Message string   `json:"message"`
}

// Client talks to the download backend's REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (e.g. "http://host:5000/api")
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListTasks fetches all task records
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/download/list", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Stats fetches the aggregate stats snapshot
func (c *Client) Stats(ctx context.Context) (model.StatsSnapshot, error) {
	var snap model.StatsSnapshot
	if err := c.do(ctx, http.MethodGet, "/download/stats", nil, &snap); err != nil {
		return model.StatsSnapshot{}, err
	}
	return snap, nil
}

// GetTask fetches a single task by id. Returns an *APIError with status 404
// if the backend no longer knows the id.
func (c *Client) GetTask(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodGet, "/download/status/"+id, nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Start asks the backend to create and start a download for the URL
func (c *Client) Start(ctx context.Context, url string) (StartResult, error) {
	var result StartResult
	body := map[string]string{"url": url}
	if err := c.do(ctx, http.MethodPost, "/download/start", body, &result); err != nil {
		return StartResult{}, err
	}
	return result, nil
}

// StartBulk asks the backend to create and start downloads for several URLs
func (c *Client) StartBulk(ctx context.Context, urls []string) (BulkResult, error) {
	var result BulkResult
	body := map[string]any{"urls": urls}
	if err := c.do(ctx, http.MethodPost, "/download/bulk", body, &result); err != nil {
		return BulkResult{}, err
	}
	return result, nil
}

// Pause pauses the task with the given id
func (c *Client) Pause(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/download/pause/"+id, nil, nil)
}

// Resume resumes the paused task with the given id
func (c *Client) Resume(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/download/resume/"+id, nil, nil)
}

// Delete removes the task with the given id from the backend
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/download/delete/"+id, nil, nil)
}

// do issues one request and decodes the response into out when out is non-nil.
// Non-2xx responses are decoded into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}
