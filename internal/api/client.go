package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"admin-console/internal/util"

	"go.uber.org/zap"
)

// TokenSource supplies the current bearer credential. The client reads it on
// every request; an empty string means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// APIError is the uniform failure surfaced for any transport or HTTP error.
// Status is 0 when the request never produced a response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client wraps outbound calls to the REST backend. It attaches the bearer
// credential, surfaces failures as *APIError and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
}

// NewClient creates a backend API client. A zero timeout disables the
// client-side deadline.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     util.GetLogger(),
	}
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	route := routeLabel(path)

	ctx, span := util.StartSpan(ctx, fmt.Sprintf("api.%s %s", method, route))
	defer span.End()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, route, "0", start)
		c.logger.Warn("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	c.observe(method, route, status, start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("read response body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Message != "" {
			apiErr.Message = eb.Message
		}
		c.logger.Warn("Backend returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response body: %v", err)}
		}
	}

	c.logger.Debug("Backend request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))
	return nil
}

func (c *Client) observe(method, route, status string, start time.Time) {
	util.APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	util.APIRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
}

// routeLabel collapses a request path to its first segment so id-bearing
// paths do not explode metric cardinality.
func routeLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
