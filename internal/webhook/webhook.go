// Package webhook sends a single JSON payload to a workflow-automation webhook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// DefaultTimeout bounds one POST from dial to the last response byte.
const DefaultTimeout = 30 * time.Second

// maxBodyCapture is how much of the response body is kept for display.
const maxBodyCapture = 4 << 10

var (
	ErrTimeout    = errors.New("webhook: request timed out")
	ErrConnection = errors.New("webhook: connection failed")
	ErrUnexpected = errors.New("webhook: unexpected failure")
)

// Payload is the body the workflow expects.
type Payload struct {
	Type       string `json:"type"`
	TargetLang string `json:"target-lang"`
	Content    string `json:"content"`
}

// Response describes what the endpoint answered. Any status code is a response.
type Response struct {
	StatusCode int           `json:"status_code"`
	Body       string        `json:"body,omitempty"`
	Latency    time.Duration `json:"latency"`
}

type Client struct {
	client *http.Client
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient wraps an existing client, e.g. one returned by httptest.
func NewWithHTTPClient(client *http.Client) *Client {
	return &Client{client: client}
}

func (c *Client) Timeout() time.Duration {
	return c.client.Timeout
}

// Post sends payload to endpoint once. Transport failures are wrapped with
// ErrTimeout, ErrConnection or ErrUnexpected; the underlying cause stays in the chain.
func (c *Client) Post(ctx context.Context, endpoint string, payload Payload) (*Response, error) {
	start := time.Now()

	body, err := encode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %w", ErrUnexpected, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSpace(endpoint), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()

	captured, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyCapture))
	// Drain the rest so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(captured),
		Latency:    time.Since(start),
	}, nil
}

// Classify wraps a transport error with the matching sentinel.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrConnection) || errors.Is(err, ErrUnexpected) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return false
}

func encode(payload Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
