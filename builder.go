package goConsole

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrEthical07/goConsole/session"
	"github.com/MrEthical07/goConsole/token"
)

// Builder defines a public type used by goConsole APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient *http.Client
	storage    session.Storage
	redis      *redis.Client
	auditSink  AuditSink
	now        func() time.Time

	onSessionInvalid func()

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithStorage describes the withstorage operation and its observable behavior.
//
// WithStorage does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithStorage(storage session.Storage) *Builder {
	b.storage = storage
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// WithClock describes the withclock operation and its observable behavior.
//
// WithClock does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithSessionInvalidHook registers a callback fired exactly once per
// forced logout, after local state is cleared. Host applications use it
// to redirect to the login view.
func (b *Builder) WithSessionInvalidHook(hook func()) *Builder {
	b.onSessionInvalid = hook
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		cfg:              cfg,
		base:             base,
		now:              b.now,
		onSessionInvalid: b.onSessionInvalid,
	}
	if client.now == nil {
		client.now = time.Now
	}

	// -------- SESSION STORAGE --------
	storage := b.storage
	switch {
	case storage != nil:
	case b.redis != nil:
		rs, rerr := session.NewRedisStorage(b.redis, cfg.Session.Redis.Prefix)
		if rerr != nil {
			return nil, rerr
		}
		storage = rs
		client.redis = b.redis
	case cfg.Session.Redis.Addr != "":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
		rs, rerr := session.NewRedisStorage(rdb, cfg.Session.Redis.Prefix)
		if rerr != nil {
			_ = rdb.Close()
			return nil, rerr
		}
		storage = rs
		client.redis = rdb
		client.ownsRedis = true
	case cfg.Session.FilePath != "":
		fs, ferr := session.NewFileStorage(cfg.Session.FilePath)
		if ferr != nil {
			return nil, ferr
		}
		storage = fs
	default:
		storage = session.NewMemoryStorage()
	}

	sessions, err := session.NewManager(storage)
	if err != nil {
		return nil, err
	}
	client.sessions = sessions.WithClock(b.now)

	inspector, err := token.NewInspector(token.Config{
		Leeway: cfg.Token.Leeway,
		Now:    b.now,
	})
	if err != nil {
		return nil, err
	}
	client.inspector = inspector

	client.audit = newAuditDispatcher(cfg.Audit, b.auditSink, client.now)
	client.metrics = NewMetrics(cfg.Metrics)

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	inner := httpClient.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	wrapped := *httpClient
	wrapped.Transport = &authTransport{base: inner, client: client}
	if wrapped.Timeout == 0 {
		wrapped.Timeout = cfg.API.Timeout
	}
	client.http = &wrapped

	client.ready = true
	b.built = true

	return client, nil
}
