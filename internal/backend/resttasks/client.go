// Package resttasks implements the service.Service interface against
// the GoTasker REST API.
package resttasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"gotasker/internal/config"
	"gotasker/internal/service"
	"gotasker/internal/session"
)

// Client implements service.Service over HTTP.
type Client struct {
	baseURL string
	timeout time.Duration
	sess    session.Store
	log     *zap.Logger

	// authed attaches the bearer token from the session store,
	// anon is used for the register/login endpoints.
	authed *http.Client
	anon   *http.Client
}

// New creates a client for the API at cfg.APIBaseURL, reading the
// bearer token from sess on every authorized request.
func New(cfg *config.Config, sess session.Store, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.APIBaseURL,
		timeout: cfg.Timeout,
		sess:    sess,
		log:     log,
		authed: &http.Client{
			Transport: &oauth2.Transport{Source: sessionTokenSource{sess}},
		},
		anon: &http.Client{},
	}
}

// sessionTokenSource adapts the session store to oauth2.TokenSource so
// the oauth2 transport sets "Authorization: Bearer <token>" for us.
type sessionTokenSource struct {
	sess session.Store
}

func (s sessionTokenSource) Token() (*oauth2.Token, error) {
	tok := s.sess.Token()
	if tok == "" {
		return nil, fmt.Errorf("not logged in")
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

// Signup registers a new account and returns the issued token.
func (c *Client) Signup(ctx context.Context, creds Credentials) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, call{
		op:         "sign up",
		defaultMsg: "Failed to sign up",
		method:     http.MethodPost,
		path:       "/register",
		body:       creds,
		client:     c.anon,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates and returns the issued token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, call{
		op:         "log in",
		defaultMsg: "Failed to log in",
		method:     http.MethodPost,
		path:       "/login",
		body:       creds,
		client:     c.anon,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CreateTask creates a task. Draft defaults are applied before sending.
func (c *Client) CreateTask(ctx context.Context, draft service.Draft) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, call{
		op:         "create task",
		defaultMsg: "Failed to create task",
		method:     http.MethodPost,
		path:       "/tasks",
		body:       payloadFor(draft),
		client:     c.authed,
		authorized: true,
	}, &task)
	return task, err
}

// ListTasks fetches the task collection, passing params through verbatim.
func (c *Client) ListTasks(ctx context.Context, params url.Values) ([]service.Task, error) {
	var resp listResponse
	err := c.do(ctx, call{
		op:         "fetch tasks",
		defaultMsg: "Failed to fetch tasks",
		method:     http.MethodGet,
		path:       "/tasks",
		query:      params,
		client:     c.authed,
		authorized: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, id int) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, call{
		op:         "fetch task",
		defaultMsg: "Failed to fetch task",
		method:     http.MethodGet,
		path:       "/tasks/" + strconv.Itoa(id),
		client:     c.authed,
		authorized: true,
	}, &task)
	return task, err
}

// UpdateTask replaces a task. The create defaulting rules apply; the
// full payload is always sent (no partial patch).
func (c *Client) UpdateTask(ctx context.Context, id int, draft service.Draft) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, call{
		op:         "update task",
		defaultMsg: "Failed to update task",
		method:     http.MethodPut,
		path:       "/tasks/" + strconv.Itoa(id),
		body:       payloadFor(draft),
		client:     c.authed,
		authorized: true,
	}, &task)
	return task, err
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, call{
		op:         "delete task",
		defaultMsg: "Failed to delete task",
		method:     http.MethodDelete,
		path:       "/tasks/" + strconv.Itoa(id),
		client:     c.authed,
		authorized: true,
	}, nil)
}

// Credentials is an alias so callers build them from one package.
type Credentials = service.Credentials

// taskPayload is the wire shape for create and update. Every field is
// always present; DueDate encodes as null when nil.
type taskPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

type listResponse struct {
	Tasks []service.Task `json:"tasks"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func payloadFor(draft service.Draft) taskPayload {
	d := draft.Normalized()
	return taskPayload{
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		DueDate:     d.DueDate,
	}
}

// call describes one API request.
type call struct {
	op         string
	defaultMsg string
	method     string
	path       string
	query      url.Values
	body       any
	client     *http.Client
	authorized bool
}

// do performs the request and decodes the response into out (when out
// is non-nil). Any failure is normalized into *service.APIError: a
// non-2xx response carries the server's error field when decodable,
// everything else collapses to the operation default message. Raw
// transport errors never escape.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return &service.APIError{Op: cl.op, Message: cl.defaultMsg}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, reqBody)
	if err != nil {
		return &service.APIError{Op: cl.op, Message: cl.defaultMsg}
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug("api request",
		zap.String("op", cl.op),
		zap.String("method", cl.method),
		zap.String("url", u),
		zap.String("request_id", requestID),
	)

	resp, err := cl.client.Do(req)
	if err != nil {
		c.log.Debug("api transport failure",
			zap.String("op", cl.op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return &service.APIError{Op: cl.op, Message: cl.defaultMsg}
	}
	defer resp.Body.Close()

	c.log.Debug("api response",
		zap.String("op", cl.op),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(cl, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &service.APIError{Op: cl.op, Message: cl.defaultMsg}
		}
	}
	return nil
}

// errorFrom builds the normalized APIError for a non-2xx response.
// A rejected token on an authorized call clears the session store so
// the next command starts anonymous.
func (c *Client) errorFrom(cl call, resp *http.Response) error {
	msg := cl.defaultMsg
	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}

	if cl.authorized && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		if err := c.sess.Clear(); err != nil {
			c.log.Debug("failed to clear rejected session", zap.Error(err))
		}
	}

	return &service.APIError{
		Op:         cl.op,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
