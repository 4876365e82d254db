package goConsole

import (
	"testing"
	"time"
)

func validTestConfig() Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = "https://console.example.com"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"base url without scheme", func(c *Config) { c.API.BaseURL = "console.example.com" }, true},
		{"base url bad scheme", func(c *Config) { c.API.BaseURL = "ftp://console.example.com" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"zero max body size", func(c *Config) { c.API.MaxBodySize = 0 }, true},
		{"negative leeway", func(c *Config) { c.Token.Leeway = -time.Second }, true},
		{"leeway over cap", func(c *Config) { c.Token.Leeway = 3 * time.Minute }, true},
		{"login path not absolute", func(c *Config) { c.Guard.LoginPath = "login" }, true},
		{"forbidden path not absolute", func(c *Config) { c.Guard.ForbiddenPath = "home" }, true},
		{"redis addr without prefix", func(c *Config) {
			c.Session.Redis.Addr = "localhost:6379"
			c.Session.Redis.Prefix = ""
		}, true},
		{"audit enabled zero buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}, true},
		{"redis configured", func(c *Config) { c.Session.Redis.Addr = "localhost:6379" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("CONSOLE_API_BASE_URL", "https://console.example.com")
	t.Setenv("CONSOLE_API_TIMEOUT", "5s")
	t.Setenv("CONSOLE_SESSION_FILE", "/tmp/console-session.json")
	t.Setenv("CONSOLE_TOKEN_LEEWAY", "1m")
	t.Setenv("CONSOLE_GUARD_LOGIN_PATH", "/signin")
	t.Setenv("CONSOLE_AUDIT_ENABLED", "true")
	t.Setenv("CONSOLE_AUDIT_BUFFER_SIZE", "64")
	t.Setenv("CONSOLE_METRICS_ENABLED", "true")

	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("load env config: %v", err)
	}

	if cfg.API.BaseURL != "https://console.example.com" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Session.FilePath != "/tmp/console-session.json" {
		t.Fatalf("session file = %q", cfg.Session.FilePath)
	}
	if cfg.Token.Leeway != time.Minute {
		t.Fatalf("leeway = %v", cfg.Token.Leeway)
	}
	if cfg.Guard.LoginPath != "/signin" {
		t.Fatalf("login path = %q", cfg.Guard.LoginPath)
	}
	if !cfg.Audit.Enabled || cfg.Audit.BufferSize != 64 {
		t.Fatalf("audit config = %+v", cfg.Audit)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics not enabled")
	}
}

func TestLoadEnvConfigRejectsInvalid(t *testing.T) {
	t.Setenv("CONSOLE_API_BASE_URL", "")

	if _, err := LoadEnvConfig(); err == nil {
		t.Fatal("expected error without base url")
	}
}

func TestLoadEnvConfigSkipsMissingDotenv(t *testing.T) {
	t.Setenv("CONSOLE_API_BASE_URL", "https://console.example.com")

	if _, err := LoadEnvConfig(t.TempDir() + "/does-not-exist.env"); err != nil {
		t.Fatalf("missing dotenv file must be skipped, got %v", err)
	}
}

func TestCloneConfigIsIndependent(t *testing.T) {
	cfg := validTestConfig()
	clone := cloneConfig(cfg)
	clone.API.BaseURL = "https://other.example.com"
	clone.Session.Redis.Addr = "localhost:6379"

	if cfg.API.BaseURL != "https://console.example.com" {
		t.Fatal("clone mutation leaked into original")
	}
	if cfg.Session.Redis.Addr != "" {
		t.Fatal("clone redis mutation leaked into original")
	}
}

func TestBuilderRejectsDoubleBuild(t *testing.T) {
	builder := New().WithConfig(validTestConfig())
	client, err := builder.Build()
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if _, err := builder.Build(); err == nil {
		t.Fatal("second build must fail")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	if _, err := New().WithConfig(Config{}).Build(); err == nil {
		t.Fatal("expected config validation failure")
	}
}
