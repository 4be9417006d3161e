// Package client provides a typed client for the Reelfolio record API.
//
// Every call is a single attempt. Any transport failure, non-2xx status or
// undecodable body is reported as a *RequestFailedError carrying a message
// suitable for display.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reelfolio/core/internal/domain/entities"
)

// ErrRequestFailed matches every error returned by Client
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError describes a failed API call
type RequestFailedError struct {
	// Message is the operation-specific text, e.g. "Failed to add project".
	Message string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// Is reports ErrRequestFailed for every RequestFailedError
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// Client is a client for the record API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero means no timeout; callers can still
	// cancel through the context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New creates a new record API client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// =============================================================================
// Projects
// =============================================================================

// ListProjects fetches every project.
func (c *Client) ListProjects(ctx context.Context) ([]entities.Project, error) {
	var out []entities.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out, "Failed to fetch projects"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProject stores project and returns it with its assigned id. Any id
// already set on project is ignored by the server.
func (c *Client) CreateProject(ctx context.Context, project entities.Project) (entities.Project, error) {
	var out entities.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", project, &out, "Failed to add project"); err != nil {
		return entities.Project{}, err
	}
	return out, nil
}

// UpdateProject replaces the project stored under project.ID.
func (c *Client) UpdateProject(ctx context.Context, project entities.Project) (entities.Project, error) {
	var out entities.Project
	path := "/api/projects/" + url.PathEscape(project.ID)
	if err := c.do(ctx, http.MethodPut, path, project, &out, "Failed to update project"); err != nil {
		return entities.Project{}, err
	}
	return out, nil
}

// DeleteProject removes the project stored under id.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil, "Failed to delete project")
}

// =============================================================================
// Incomes
// =============================================================================

// ListIncomes fetches every income entry, newest date first.
func (c *Client) ListIncomes(ctx context.Context) ([]entities.IncomeEntry, error) {
	var out []entities.IncomeEntry
	if err := c.do(ctx, http.MethodGet, "/api/incomes", nil, &out, "Failed to fetch incomes"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIncome records entry and returns it with its assigned id.
func (c *Client) CreateIncome(ctx context.Context, entry entities.IncomeEntry) (entities.IncomeEntry, error) {
	var out entities.IncomeEntry
	if err := c.do(ctx, http.MethodPost, "/api/incomes", entry, &out, "Failed to add income"); err != nil {
		return entities.IncomeEntry{}, err
	}
	return out, nil
}

// DeleteIncome removes the entry stored under id.
func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/incomes/"+url.PathEscape(id), nil, nil, "Failed to delete income")
}

// IncomeSummary fetches the monthly income aggregation.
func (c *Client) IncomeSummary(ctx context.Context) (entities.IncomeSummary, error) {
	var out entities.IncomeSummary
	if err := c.do(ctx, http.MethodGet, "/api/incomes/summary", nil, &out, "Failed to fetch income summary"); err != nil {
		return entities.IncomeSummary{}, err
	}
	return out, nil
}

// do performs one request. Callers decode into a fresh value and drop it
// on error, so a failed call never hands back a partial result.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, failure string) error {
	fail := func(status int, err error) error {
		return &RequestFailedError{Message: failure, StatusCode: status, Err: err}
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(respBody))))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("unmarshal response: %w", err))
	}

	return nil
}
