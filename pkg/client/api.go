// Package client is a typed client for the TaskForge API plus in-memory stores
// that mirror server state for UI code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
)

const (
	csrfCookie = "XSRF-TOKEN"
	csrfHeader = "X-XSRF-TOKEN"
)

// APIError is a decoded {error, meta} envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	base *url.URL
	http *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. A jar is added if it has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client rooted at baseURL, e.g. http://localhost:8080/v1.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{base: base, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}

	return c, nil
}

type envelope[T any] struct {
	Data T              `json:"data"`
	Meta map[string]any `json:"meta"`
}

type errorEnvelope struct {
	Error struct {
		Message string              `json:"message"`
		Code    string              `json:"code"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) csrfToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		if cookie.Name == csrfCookie {
			if v, err := url.QueryUnescape(cookie.Value); err == nil {
				return v
			}
			return cookie.Value
		}
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && method != http.MethodHead {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(csrfHeader, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Error.Code != "" {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func includeQuery(include string) url.Values {
	if include == "" {
		return nil
	}
	return url.Values{"include": {include}}
}

func idPath(prefix string, id uint) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10)
}

func updatedCount(meta map[string]any) int {
	n, _ := meta["updated_count"].(float64)
	return int(n)
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CSRFCookie primes the jar with an XSRF-TOKEN cookie.
func (c *Client) CSRFCookie(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/csrf-cookie", nil, nil, nil)
}

func (c *Client) Register(ctx context.Context, in Registration) (*User, error) {
	var out envelope[User]
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) Login(ctx context.Context, in Credentials) (*User, error) {
	var out envelope[User]
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *Client) User(ctx context.Context) (*User, error) {
	var out envelope[User]
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) TaskLists(ctx context.Context, include string) ([]TaskList, error) {
	var out envelope[[]TaskList]
	if err := c.do(ctx, http.MethodGet, "/task-lists", includeQuery(include), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) TaskList(ctx context.Context, id uint, include string) (*TaskList, error) {
	var out envelope[TaskList]
	if err := c.do(ctx, http.MethodGet, idPath("/task-lists", id), includeQuery(include), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateTaskList(ctx context.Context, in TaskListInput) (*TaskList, error) {
	var out envelope[TaskList]
	if err := c.do(ctx, http.MethodPost, "/task-lists", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateTaskList(ctx context.Context, id uint, in TaskListInput) (*TaskList, error) {
	var out envelope[TaskList]
	if err := c.do(ctx, http.MethodPut, idPath("/task-lists", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteTaskList(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("/task-lists", id), nil, nil, nil)
}

// ReorderTaskLists returns how many lists the server updated.
func (c *Client) ReorderTaskLists(ctx context.Context, lists []ListPosition) (int, error) {
	var out envelope[any]
	body := map[string]interface{}{"lists": lists}
	if err := c.do(ctx, http.MethodPost, "/task-lists/reorder", nil, body, &out); err != nil {
		return 0, err
	}
	return updatedCount(out.Meta), nil
}

func (c *Client) Tasks(ctx context.Context, filters TaskFilters) (*TaskPage, error) {
	var out TaskPage
	if err := c.do(ctx, http.MethodGet, "/tasks", filters.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Task(ctx context.Context, id uint, include string) (*Task, error) {
	var out envelope[Task]
	if err := c.do(ctx, http.MethodGet, idPath("/tasks", id), includeQuery(include), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateTask(ctx context.Context, in TaskInput) (*Task, error) {
	var out envelope[Task]
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateTask(ctx context.Context, id uint, in TaskInput) (*Task, error) {
	var out envelope[Task]
	if err := c.do(ctx, http.MethodPut, idPath("/tasks", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("/tasks", id), nil, nil, nil)
}

func (c *Client) ToggleTask(ctx context.Context, id uint) (*TaskToggle, error) {
	var out envelope[TaskToggle]
	if err := c.do(ctx, http.MethodPost, idPath("/tasks", id)+"/toggle", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ReorderTasks returns how many tasks the server updated.
func (c *Client) ReorderTasks(ctx context.Context, tasks []TaskPosition) (int, error) {
	var out envelope[any]
	body := map[string]interface{}{"tasks": tasks}
	if err := c.do(ctx, http.MethodPost, "/tasks/reorder", nil, body, &out); err != nil {
		return 0, err
	}
	return updatedCount(out.Meta), nil
}

func (c *Client) Tags(ctx context.Context, include string) ([]Tag, error) {
	var out envelope[[]Tag]
	if err := c.do(ctx, http.MethodGet, "/tags", includeQuery(include), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateTag(ctx context.Context, in TagInput) (*Tag, error) {
	var out envelope[Tag]
	if err := c.do(ctx, http.MethodPost, "/tags", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateTag(ctx context.Context, id uint, in TagInput) (*Tag, error) {
	var out envelope[Tag]
	if err := c.do(ctx, http.MethodPut, idPath("/tags", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteTag(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("/tags", id), nil, nil, nil)
}
