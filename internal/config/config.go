package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// AppName is the scriptable host application addressed by every script.
	AppName string `env:"OSA_APP_NAME" envDefault:"iTerm2"`
	// Interpreter is the osascript binary invoked per attempt.
	Interpreter string `env:"OSA_BIN" envDefault:"osascript"`
	// CatalogPath is the path to the YAML tool catalog; empty selects the
	// embedded default catalog.
	CatalogPath string `env:"OSA_CATALOG" envDefault:""`
	// Timeout is the wall-clock limit per interpreter attempt.
	Timeout time.Duration `env:"OSA_TIMEOUT" envDefault:"10s"`
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int `env:"OSA_MAX_RETRIES" envDefault:"3"`
	// RetryDelay is the base backoff delay, doubled per attempt.
	RetryDelay time.Duration `env:"OSA_RETRY_DELAY" envDefault:"1s"`
	// OutputCap bounds captured interpreter output in bytes.
	OutputCap int64 `env:"OSA_OUTPUT_CAP" envDefault:"1048576"`
	// LogLevel sets the logger level.
	LogLevel string `env:"OSA_LOG_LEVEL" envDefault:"info"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"OSA_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
