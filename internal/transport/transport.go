// Package transport implements the authenticated HTTP transport against
// the remote complaint service. It owns no state of its own: the bearer
// token is read from the credential store on every call, so a request
// issued after a logout in another context goes out unauthenticated and
// the server decides rejection.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
	"github.com/intelligrievance/grievance-client/internal/core/ports"
	"github.com/intelligrievance/grievance-client/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Client dispatches JSON requests to the complaint service. It never
// retries, never caches, and never mutates the credential store.
type Client struct {
	baseURL    string
	store      ports.CredentialStore
	httpClient *http.Client
}

// NewClient creates a transport rooted at baseURL. Requests read their
// bearer token from store; httpClient may be nil for the default.
func NewClient(baseURL string, store ports.CredentialStore, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, store: store, httpClient: httpClient}
}

// errorResponse is the service's canonical error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// Do sends one request and decodes a 2xx body into out when non-nil.
// Non-2xx responses are mapped onto the domain error taxonomy with the
// service's message carried through unchanged.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if session, ok := c.store.Load(); ok {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, codeClass(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError maps a non-2xx response onto the error taxonomy. The
// service's message is surfaced verbatim so views can render it inline.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var envelope errorResponse
	msg := ""
	if err := json.Unmarshal(data, &envelope); err == nil {
		msg = envelope.Error
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = domain.ErrValidation
	case http.StatusUnauthorized:
		sentinel = domain.ErrInvalidCredentials
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrUserExists
	case http.StatusUnprocessableEntity:
		sentinel = domain.ErrInvalidTransition
	default:
		sentinel = domain.ErrUnavailable
	}

	if msg == "" {
		// Unstructured body: keep the raw payload for diagnostics.
		return fmt.Errorf("%w: status %d: %s", sentinel, resp.StatusCode, string(data))
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

func codeClass(status int) string {
	switch {
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
