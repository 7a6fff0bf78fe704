package logging

import (
	"fmt"
	"os"

	"digital.vasic.resultkit/pkg/config"
)

// New builds a Logger from configuration.
func New(cfg config.Logging) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	switch cfg.Format {
	case config.FormatNone:
		return NullLogger{}, nil
	case config.FormatJSON:
		logger, err := NewJSONLogger(LoggerConfig{
			OutputPath: cfg.OutputPath,
			Level:      level,
		})
		if err != nil {
			return nil, err
		}
		return logger, nil
	case config.FormatConsole, "":
		return newConsoleFromConfig(cfg, level)
	default:
		return nil, fmt.Errorf("unknown log format: %q", cfg.Format)
	}
}

func newConsoleFromConfig(
	cfg config.Logging, level LogLevel,
) (Logger, error) {
	if cfg.OutputPath == "" {
		return NewConsoleLoggerTo(os.Stderr, level, cfg.Color), nil
	}

	file, err := os.OpenFile(
		cfg.OutputPath,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewConsoleLoggerTo(file, level, cfg.Color)
	logger.closer = file
	return logger, nil
}
