package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"portalsync/internal/platform/metrics"
)

const basePath = "/api/v1"

// Client is the typed JSON client for the remote dashboard API. All entity
// controllers share one Client; it owns the base URL, the bearer token and
// the content-type conventions.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    *metrics.Collector

	mu    sync.RWMutex
	token string
}

func New(root string, timeout time.Duration, collector *metrics.Collector) (*Client, error) {
	root = strings.TrimSpace(root)
	u, err := url.Parse(root)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API root %q", root)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    collector,
	}, nil
}

// SetToken installs the bearer token attached to subsequent calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// DoJSON issues one call against {root}/api/v1{path}. The returned bool
// reports whether a response body was decoded into out; a 204 or empty body
// on success yields false so callers can fall back to their own payload.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) (bool, error) {
	start := time.Now()
	decoded, err := c.doJSON(ctx, method, path, in, out)
	if c.metrics != nil {
		c.metrics.Record(err != nil, time.Since(start))
	}
	return decoded, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) (bool, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + basePath + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &RequestError{Status: resp.StatusCode}
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			reqErr.Code = apiErr.Code
			reqErr.Message = apiErr.Message
		}
		if reqErr.Message == "" {
			reqErr.Message = strings.TrimSpace(string(respBody))
		}
		return false, reqErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return false, fmt.Errorf("unmarshal response: %w", err)
	}
	return true, nil
}

// Login exchanges credentials for a bearer token and installs it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	if _, err := c.DoJSON(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		return err
	}
	if result.Token == "" {
		return fmt.Errorf("login response missing token")
	}
	c.SetToken(result.Token)
	return nil
}
