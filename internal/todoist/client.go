// Package todoist reads tasks from the Todoist REST API so they can be
// imported as household chores.
package todoist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"choreboard/internal/model"
)

const DefaultBaseURL = "https://api.todoist.com"

var ErrMissingToken = errors.New("todoist: api token is not configured")

// Due is the due block of a Todoist task. Date is always YYYY-MM-DD.
type Due struct {
	Date      string `json:"date"`
	String    string `json:"string,omitempty"`
	Recurring bool   `json:"is_recurring,omitempty"`
}

// Task is the subset of a Todoist task that maps onto a chore.
// Priority runs from 1 (normal) to 4 (urgent).
type Task struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Due         *Due   `json:"due"`
}

// ToModel converts the Todoist task into a pending household task.
func (t Task) ToModel() *model.Task {
	out := &model.Task{
		Title:  strings.TrimSpace(t.Content),
		Status: model.StatusPending,
	}
	if d := strings.TrimSpace(t.Description); d != "" {
		out.Description = &d
	}
	if t.Due != nil && t.Due.Date != "" {
		date := t.Due.Date
		if len(date) > len(model.DueDateLayout) {
			date = date[:len(model.DueDateLayout)]
		}
		out.DueDate = &date
	}

	p := model.PriorityLow
	switch t.Priority {
	case 4:
		p = model.PriorityHigh
	case 3:
		p = model.PriorityMedium
	}
	out.Priority = &p
	return out
}

// Client talks to the Todoist REST API v2.
type Client struct {
	http   *resty.Client
	token  string
	logger *zap.Logger
}

// NewClient creates a Todoist client. An empty baseURL selects the public API.
func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Accept", "application/json").
		SetAuthToken(token)

	return &Client{http: rc, token: token, logger: logger}
}

// ListTasks returns every active task visible to the token.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	var tasks []Task
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tasks).
		Get("/rest/v2/tasks")
	if err != nil {
		c.logger.Error("todoist request failed", zap.Error(err))
		return nil, fmt.Errorf("todoist: list tasks: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("todoist returned an error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", truncate(resp.String(), 256)),
		)
		return nil, fmt.Errorf("todoist: list tasks: unexpected status %d", resp.StatusCode())
	}

	c.logger.Info("fetched todoist tasks", zap.Int("count", len(tasks)))
	return tasks, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
