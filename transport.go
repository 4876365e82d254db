package goConsole

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// APIError carries the status and message the console API answered with.
// It wraps a package sentinel so callers can branch with errors.Is while
// still logging the server detail.
type APIError struct {
	Status    int
	Message   string
	RequestID string
	err       error
}

// Error describes the error operation and its observable behavior.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("console api: status %d", e.Status)
	}
	return fmt.Sprintf("console api: status %d: %s", e.Status, e.Message)
}

// Unwrap describes the unwrap operation and its observable behavior.
func (e *APIError) Unwrap() error {
	return e.err
}

func apiStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// apiErrorBody mirrors the NestJS error envelope. The message field is a
// plain string for most failures and an array for validation failures.
type apiErrorBody struct {
	Message    json.RawMessage `json:"message"`
	StatusCode int             `json:"statusCode"`
	Error      string          `json:"error"`
}

func decodeAPIError(status int, requestID string, body []byte) *APIError {
	apiErr := &APIError{
		Status:    status,
		Message:   http.StatusText(status),
		RequestID: requestID,
	}

	switch {
	case status == http.StatusUnauthorized:
		apiErr.err = ErrUnauthorized
	case status == http.StatusNotFound:
		apiErr.err = ErrNotFound
	case status >= http.StatusInternalServerError:
		apiErr.err = ErrServerUnavailable
	}

	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}
	if msg := decodeErrorMessage(envelope.Message); msg != "" {
		apiErr.Message = msg
	}
	return apiErr
}

func decodeErrorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return ""
}

// authTransport injects the bearer token and a request identifier into
// every outgoing call, and invalidates the local session exactly once
// when the server answers 401 for the generation that sent the request.
type authTransport struct {
	base   http.RoundTripper
	client *Client
}

// RoundTrip describes the roundtrip operation and its observable behavior.
//
// RoundTrip does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	generation := t.client.sessions.Generation()

	out := req.Clone(req.Context())
	if out.Header.Get("Authorization") == "" {
		if tok := bearerTokenFromContext(req.Context()); tok != "" {
			out.Header.Set("Authorization", "Bearer "+tok)
		} else if token, ok := t.client.sessions.Token(); ok {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if out.Header.Get(headerRequestID) == "" {
		requestID := requestIDFromContext(req.Context())
		if requestID == "" {
			requestID = uuid.NewString()
		}
		out.Header.Set(headerRequestID, requestID)
	}
	if out.Header.Get("User-Agent") == "" && t.client.cfg.API.UserAgent != "" {
		out.Header.Set("User-Agent", t.client.cfg.API.UserAgent)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(out)
	t.client.metrics.Observe(MetricRequestLatency, time.Since(start))
	if err != nil {
		t.client.metrics.Inc(MetricRequestFailure)
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.client.invalidateSession(req.Context(), generation, out.Header.Get(headerRequestID), out.URL.Path)
	}
	return resp, nil
}
