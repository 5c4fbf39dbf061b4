package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"go.uber.org/zap"
)

// Doer is the subset of *http.Client the backend client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http  Doer
	sleep Sleeper
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

func WithSleeper(s Sleeper) Option {
	return func(c *Client) { c.sleep = s }
}

func NewClient(opts ...Option) *Client {
	c := &Client{http: http.DefaultClient, sleep: SleepContext}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one logical backend request.
type call struct {
	method       string
	path         string
	query        url.Values
	body         any
	hasBody      bool
	token        string
	policy       RetryPolicy
	defaultError string
}

func (c *Client) do(ctx context.Context, baseURL string, req call, out any) error {
	_, err := Retry(ctx, Retrier{Policy: req.policy, Sleep: c.sleep}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.once(ctx, baseURL, req, out)
	})
	return err
}

func (c *Client) once(ctx context.Context, baseURL string, req call, out any) error {
	target := strings.TrimRight(baseURL, "/") + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.hasBody {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.BuildAPIError(req.defaultError, resp.StatusCode, raw)
	}

	decodeLenient(req.path, raw, out)
	return nil
}

// decodeLenient leaves out at its zero value when the body is empty or not JSON.
func decodeLenient(path string, raw []byte, out any) {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Debug("[decodeLenient] unreadable response body", zap.String("path", path), zap.String("error", err.Error()))
	}
}

func postJSON(path string, body any, policy RetryPolicy, defaultError string) call {
	return call{method: http.MethodPost, path: path, body: body, hasBody: true, policy: policy, defaultError: defaultError}
}

func getJSON(path string, query url.Values, policy RetryPolicy, defaultError string) call {
	return call{method: http.MethodGet, path: path, query: query, policy: policy, defaultError: defaultError}
}
