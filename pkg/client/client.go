package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	model "todolist.com/todolist/pkg/models"
)

// Client calls the task API. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New expects baseURL to include the /api prefix, e.g. http://127.0.0.1:8080/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CreateTaskData struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
}

// UpdateTaskData is a partial patch. A non-nil empty DueDate clears it.
type UpdateTaskData struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
}

// List sends the filters in the body of the GET request, as the API expects.
func (c *Client) List(ctx context.Context, filters *model.TaskFilters) ([]model.Task, error) {
	body := model.TaskFilters{}
	if filters != nil {
		body = *filters
	}

	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", body, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (c *Client) Create(ctx context.Context, data CreateTaskData) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", data, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Get(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Update(ctx context.Context, id uint, data UpdateTaskData) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), data, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := c.do(ctx, http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{
			StatusCode: resp.StatusCode,
			Message:    "decode response: " + err.Error(),
			Err:        err,
		}
	}
	return nil
}

// errorMessage extracts {"message": ...} or {"error": ...}; message may
// also be a list of strings.
func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}

	for _, key := range []string{"message", "error"} {
		switch v := payload[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprint(item))
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}

	return http.StatusText(resp.StatusCode)
}
