// Package client is a typed HTTP client for the todo API.
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
	"strconv"
	"strings"
	"time"

	"github.com/dreamware/todo/internal/todo"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Kind       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Is maps 404 responses onto todo.ErrNotFound and 400 onto todo.ErrValidation.
func (e *APIError) Is(target error) bool {
	switch target {
	case todo.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case todo.ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

// CreateRequest is the body of a create call.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Client talks to one todo API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL, e.g. "http://localhost:8080". A nil
// httpClient gets a 5 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// List returns every todo.
func (c *Client) List(ctx context.Context) ([]todo.Todo, error) {
	var out []todo.Todo
	err := c.do(ctx, http.MethodGet, "/todos", nil, &out)
	return out, err
}

// Search returns the todos whose title and description contain the given
// substrings. Empty arguments don't filter.
func (c *Client) Search(ctx context.Context, f todo.Filter) ([]todo.Todo, error) {
	q := url.Values{}
	if f.Title != "" {
		q.Set("title", f.Title)
	}
	if f.Description != "" {
		q.Set("description", f.Description)
	}
	path := "/todos/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []todo.Todo
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Get returns one todo.
func (c *Client) Get(ctx context.Context, id int) (todo.Todo, error) {
	var out todo.Todo
	err := c.do(ctx, http.MethodGet, todoPath(id), nil, &out)
	return out, err
}

// Create adds a todo and returns it with its assigned ID.
func (c *Client) Create(ctx context.Context, req CreateRequest) (todo.Todo, error) {
	var out todo.Todo
	err := c.do(ctx, http.MethodPost, "/todos", req, &out)
	return out, err
}

// Update applies a partial update.
func (c *Client) Update(ctx context.Context, id int, patch todo.Patch) (todo.Todo, error) {
	var out todo.Todo
	err := c.do(ctx, http.MethodPut, todoPath(id), patch, &out)
	return out, err
}

// Delete removes a todo.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

func todoPath(id int) string {
	return "/todos/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
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
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil && !errors.Is(err, io.EOF) {
			apiErr.Message = ""
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
