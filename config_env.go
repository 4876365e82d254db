package goConsole

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type envConfig struct {
	BaseURL     string        `env:"CONSOLE_API_BASE_URL"`
	Timeout     time.Duration `env:"CONSOLE_API_TIMEOUT" envDefault:"15s"`
	UserAgent   string        `env:"CONSOLE_API_USER_AGENT" envDefault:"goConsole/1.0"`
	MaxBodySize int64         `env:"CONSOLE_API_MAX_BODY_SIZE" envDefault:"1048576"`

	SessionFile   string `env:"CONSOLE_SESSION_FILE"`
	RedisAddr     string `env:"CONSOLE_REDIS_ADDR"`
	RedisPassword string `env:"CONSOLE_REDIS_PASSWORD"`
	RedisDB       int    `env:"CONSOLE_REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"CONSOLE_REDIS_PREFIX" envDefault:"goconsole"`

	TokenLeeway time.Duration `env:"CONSOLE_TOKEN_LEEWAY" envDefault:"30s"`

	LoginPath     string `env:"CONSOLE_GUARD_LOGIN_PATH" envDefault:"/login"`
	ForbiddenPath string `env:"CONSOLE_GUARD_FORBIDDEN_PATH" envDefault:"/"`

	AuditEnabled    bool `env:"CONSOLE_AUDIT_ENABLED" envDefault:"false"`
	AuditBufferSize int  `env:"CONSOLE_AUDIT_BUFFER_SIZE" envDefault:"1024"`
	AuditDropIfFull bool `env:"CONSOLE_AUDIT_DROP_IF_FULL" envDefault:"true"`

	MetricsEnabled bool `env:"CONSOLE_METRICS_ENABLED" envDefault:"false"`
	MetricsLatency bool `env:"CONSOLE_METRICS_LATENCY" envDefault:"false"`
}

// LoadEnvConfig builds a Config from CONSOLE_* environment variables.
// Dotenv files given as arguments are loaded first when they exist, so a
// local .env can fill in development values without touching the real
// environment of the process supervisor.
func LoadEnvConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, err
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, err
		}
	}

	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, err
	}

	cfg := defaultConfig()
	cfg.API.BaseURL = raw.BaseURL
	cfg.API.Timeout = raw.Timeout
	cfg.API.UserAgent = raw.UserAgent
	cfg.API.MaxBodySize = raw.MaxBodySize
	cfg.Session.FilePath = raw.SessionFile
	cfg.Session.Redis.Addr = raw.RedisAddr
	cfg.Session.Redis.Password = raw.RedisPassword
	cfg.Session.Redis.DB = raw.RedisDB
	cfg.Session.Redis.Prefix = raw.RedisPrefix
	cfg.Token.Leeway = raw.TokenLeeway
	cfg.Guard.LoginPath = raw.LoginPath
	cfg.Guard.ForbiddenPath = raw.ForbiddenPath
	cfg.Audit.Enabled = raw.AuditEnabled
	cfg.Audit.BufferSize = raw.AuditBufferSize
	cfg.Audit.DropIfFull = raw.AuditDropIfFull
	cfg.Metrics.Enabled = raw.MetricsEnabled
	cfg.Metrics.EnableLatencyHistograms = raw.MetricsLatency

	return cfg, cfg.Validate()
}
