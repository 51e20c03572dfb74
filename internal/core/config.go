package core

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv names the environment variable holding the default log level, e.g. "debug".
const LogLevelEnv = "EVENTMON_LOG_LEVEL"

// Option configures a Monitor call.
type Option func(*config)

// WithLogger sends the monitor's logs to logger instead of the default stderr logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewLogger returns a logger writing to out at the level named by the LogLevelEnv variable, as
// read through getEnv. Unset or unparseable levels fall back to warning.
func NewLogger(out io.Writer, getEnv func(string) string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.WarnLevel)

	if raw := strings.TrimSpace(getEnv(LogLevelEnv)); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			logger.WithError(err).Warnf("ignoring %s", LogLevelEnv)
		} else {
			logger.SetLevel(level)
		}
	}

	return logger
}

type config struct {
	logger logrus.FieldLogger
}

// newConfig applies options over the defaults.
func newConfig(options []Option) config {
	cfg := config{logger: defaultLogger()}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// defaultLogger returns the process-wide default logger, built on first use.
func defaultLogger() *logrus.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLoggerValue = NewLogger(os.Stderr, os.Getenv)
	})

	return defaultLoggerValue
}

// unexported variables.
var (
	//nolint:gochecknoglobals // lazily built default logger
	defaultLoggerOnce sync.Once
	//nolint:gochecknoglobals // lazily built default logger
	defaultLoggerValue *logrus.Logger
)
