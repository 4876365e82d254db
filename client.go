package goConsole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrEthical07/goConsole/session"
	"github.com/MrEthical07/goConsole/token"
)

// Client defines a public type used by goConsole APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	cfg       Config
	http      *http.Client
	base      *url.URL
	sessions  *session.Manager
	inspector *token.Inspector
	audit     *auditDispatcher
	metrics   *Metrics
	now       func() time.Time

	redis     *redis.Client
	ownsRedis bool

	onSessionInvalid func()

	ready bool
}

// Metrics describes the metrics operation and its observable behavior.
//
// Metrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Metrics() *Metrics {
	if c == nil {
		return nil
	}
	return c.metrics
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded under
// backpressure since the client was built.
func (c *Client) AuditDropped() uint64 {
	if c == nil {
		return 0
	}
	return c.audit.Dropped()
}

// Close drains the audit dispatcher and releases the redis connection
// when the client owns one. The client must not be used afterwards.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.audit.Close()
	if c.ownsRedis && c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

// do runs one JSON round trip against the console API. Statuses of 400
// and above come back as *APIError; callers translate the generic error
// into their endpoint-specific sentinel.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c == nil || !c.ready {
		return ErrClientNotReady
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("console api: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("console api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.API.MaxBodySize))
	if err != nil {
		return fmt.Errorf("console api: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.Inc(MetricRequestFailure)
		requestID := ""
		if resp.Request != nil {
			requestID = resp.Request.Header.Get(headerRequestID)
		}
		return decodeAPIError(resp.StatusCode, requestID, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("console api: decode response: %w", err)
	}
	return nil
}

// invalidateSession clears the local session after a 401, but only for
// the generation that sent the failing request. Concurrent requests that
// observed the same dead token collapse into a single clear, and a
// session established after the request went out is left alone.
func (c *Client) invalidateSession(ctx context.Context, generation uint64, requestID, path string) {
	cleared, err := c.sessions.ClearGeneration(ctx, generation)
	if err != nil || !cleared {
		return
	}

	c.metrics.Inc(MetricSessionInvalidated)
	if c.audit != nil {
		c.audit.emit(ctx, AuditEvent{
			EventType: EventSessionInvalidated,
			RequestID: requestID,
			Success:   false,
			Error:     ErrSessionExpired.Error(),
			Metadata:  map[string]string{"path": path},
		})
	}
	if c.onSessionInvalid != nil {
		c.onSessionInvalid()
	}
}

func (c *Client) emitAudit(ctx context.Context, event string, success bool, userID int64, role string, cause error, meta map[string]string) {
	if c.audit == nil {
		return
	}
	ev := AuditEvent{
		EventType: event,
		UserID:    userID,
		Role:      role,
		RequestID: requestIDFromContext(ctx),
		Success:   success,
		Metadata:  meta,
	}
	if cause != nil {
		ev.Error = cause.Error()
	}
	c.audit.emit(ctx, ev)
}
