// Package remote implements the remote adapter: the per-kind get/save
// contract translated into HTTP calls against the business service. Every
// operation suspends on the network; cancellation comes from the caller's
// context and is never swallowed.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/despensa-labs/almacen/pkg/types"
)

// defaultTimeout bounds a single request when the caller's context carries
// no deadline of its own.
const defaultTimeout = 30 * time.Second

// Client is the remote adapter.
type Client struct {
	baseURL       string
	token         string
	httpClient    *http.Client
	reportPartial bool
}

// Compile-time contract checks: the remote adapter carries every capability.
var (
	_ types.Adapter         = (*Client)(nil)
	_ types.EmployeeStore   = (*Client)(nil)
	_ types.MovementStore   = (*Client)(nil)
	_ types.CashCountSource = (*Client)(nil)
	_ types.OverdueSource   = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthToken sets the opaque bearer token forwarded on every request.
func WithAuthToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithPartialFailureReporting makes the per-item bulk saves (products,
// sales) return the joined per-item errors. The batch still runs to
// completion and failed positions still echo the original input item.
func WithPartialFailureReporting() Option {
	return func(c *Client) { c.reportPartial = true }
}

// New builds a remote adapter for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies this adapter.
func (c *Client) Name() string {
	return types.AdapterRemote
}

// envelope is the response shape shared by every endpoint: an optional
// success flag, a collection under "items" (or a single "item" or a scalar
// "count"), and an optional message/error pair for failure reporting.
type envelope struct {
	OK      *bool          `json:"ok"`
	Items   []types.Record `json:"items"`
	Item    types.Record   `json:"item"`
	Count   *int           `json:"count"`
	Message string         `json:"message"`
	Error   string         `json:"error"`
}

// collection returns the items field, defaulting to an empty collection.
func (e *envelope) collection() []types.Record {
	if e.Items == nil {
		return []types.Record{}
	}
	return e.Items
}

// failureMessage picks the user-facing message for a failed response:
// body message, then body error, then the numeric status.
func (e *envelope) failureMessage(status int) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return fmt.Sprintf("HTTP %d", status)
}

// RequestError is a failed remote call: a non-success status or an explicit
// failure flag in the body.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// do performs one request and decodes the envelope. A response is failed
// when the HTTP status is not successful or the body carries ok=false; the
// error then is a *RequestError. A malformed body on a successful status
// resolves to an empty envelope, not an error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (env.OK != nil && !*env.OK) {
		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: env.failureMessage(resp.StatusCode),
		}
	}
	if decodeErr != nil {
		return &envelope{}, nil
	}
	return &env, nil
}

// get issues a read request.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// bulkReplace sends the whole collection to a bulk endpoint and returns the
// server's echo.
func (c *Client) bulkReplace(ctx context.Context, path string, items []types.Record) ([]types.Record, error) {
	if items == nil {
		items = []types.Record{}
	}
	env, err := c.do(ctx, http.MethodPost, path, nil, map[string]any{"items": items})
	if err != nil {
		return nil, err
	}
	return env.collection(), nil
}

// setParam adds a query parameter when the value is non-empty.
func setParam(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

// setIntParam adds a positive integer query parameter.
func setIntParam(q url.Values, key string, val int) {
	if val > 0 {
		q.Set(key, fmt.Sprintf("%d", val))
	}
}
