package goConsole

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config defines a public type used by goConsole APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Token   TokenConfig
	Guard   GuardConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by goConsole APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int64
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by goConsole APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// FilePath selects the file backend when non-empty and no explicit
	// storage or redis address is configured.
	FilePath string
	Redis    RedisConfig
}

// RedisConfig defines a public type used by goConsole APIs.
//
// RedisConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig defines a public type used by goConsole APIs.
//
// TokenConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenConfig struct {
	// Leeway widens the local expiry check to tolerate clock skew
	// between this host and the console API.
	Leeway time.Duration
}

/*
====================================
GUARD CONFIG
====================================
*/

// GuardConfig defines a public type used by goConsole APIs.
//
// GuardConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GuardConfig struct {
	LoginPath     string
	ForbiddenPath string
}

// AuditConfig defines a public type used by goConsole APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goConsole APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:     15 * time.Second,
			UserAgent:   "goConsole/1.0",
			MaxBodySize: 1 << 20,
		},
		Session: SessionConfig{
			Redis: RedisConfig{
				Prefix: "goconsole",
			},
		},
		Token: TokenConfig{
			Leeway: 30 * time.Second,
		},
		Guard: GuardConfig{
			LoginPath:     "/login",
			ForbiddenPath: "/",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// API
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return errors.New("API BaseURL must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("API BaseURL scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("API BaseURL must include a host")
	}
	if c.API.Timeout <= 0 {
		return errors.New("API Timeout must be > 0")
	}
	if c.API.MaxBodySize <= 0 {
		return errors.New("API MaxBodySize must be > 0")
	}

	// Token
	if c.Token.Leeway < 0 {
		return errors.New("Token Leeway must be >= 0")
	}
	if c.Token.Leeway > 2*time.Minute {
		return errors.New("Token Leeway must be <= 2m")
	}

	// Guard
	if !strings.HasPrefix(c.Guard.LoginPath, "/") {
		return errors.New("Guard LoginPath must start with /")
	}
	if !strings.HasPrefix(c.Guard.ForbiddenPath, "/") {
		return errors.New("Guard ForbiddenPath must start with /")
	}

	// Session
	if c.Session.Redis.Addr != "" && c.Session.Redis.Prefix == "" {
		return errors.New("Session Redis Prefix is required when Redis Addr is set")
	}
	if c.Session.Redis.DB < 0 {
		return errors.New("Session Redis DB must be >= 0")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
