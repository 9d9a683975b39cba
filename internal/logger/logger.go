package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type ctxKey struct{}

type implLogger struct {
	logger *slog.Logger
	level  string
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level, "text")
}

// NewWithWriter creates a Logger writing to w. format is "text" or "json".
func NewWithWriter(w io.Writer, level, format string) Logger {
	level = strings.ToLower(level)
	opts := &slog.HandlerOptions{Level: slogLevel(level)}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &implLogger{
		logger: slog.New(h),
		level:  level,
	}
}

// WithRequestID returns a context tagged with a fresh request ID.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, uuid.NewString())
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) log(ctx context.Context, level slog.Level, msg string, args []interface{}) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	if id := RequestID(ctx); id != "" {
		l.logger.Log(ctx, level, msg, slog.String("request_id", id))
		return
	}
	l.logger.Log(ctx, level, msg)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.log(ctx, slog.LevelDebug, msg, args)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.log(ctx, slog.LevelInfo, msg, args)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.log(ctx, slog.LevelWarn, msg, args)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.log(ctx, slog.LevelError, msg, args)
	}
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() Logger {
	return NewWithWriter(io.Discard, "error", "text")
}
