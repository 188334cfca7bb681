package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects the level and encoding of the process logger.
type Options struct {
	Level  string
	Format string // "json" or "text"
	Output io.Writer
}

// OptionsFromEnv reads LOG_LEVEL and LOG_FORMAT, falling back to info/text.
func OptionsFromEnv() Options {
	return Options{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
	}
}

// New builds a logrus logger. An unparseable level falls back to info.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected text or json)", opts.Format)
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
