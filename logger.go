package seekgen

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with seekgen-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPattern adds a pattern field to the logger.
func (l *Logger) WithPattern(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("pattern", name),
	}
}

// WithProducer adds a producer field to the logger.
func (l *Logger) WithProducer(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("producer", name),
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(pattern string, textLen int, found bool, duration time.Duration) {
	l.Debug("search completed",
		"pattern", pattern,
		"text_len", textLen,
		"found", found,
		"duration", duration,
	)
}

// LogGenerate logs a generate operation.
func (l *Logger) LogGenerate(producer string, draws int, err error) {
	if err != nil {
		l.Error("generate failed",
			"producer", producer,
			"draws", draws,
			"error", err,
		)
	} else {
		l.Debug("generate completed",
			"producer", producer,
			"draws", draws,
		)
	}
}
