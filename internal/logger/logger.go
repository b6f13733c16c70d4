package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	cycleIDKey ctxKey = "cycleID"
	sessionKey ctxKey = "session"
)

// InitLoggerWithWriter installs the configured handler writing to w as the slog default.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateCycleID creates a new UUID identifying one runtime cycle.
func GenerateCycleID() string {
	return uuid.NewString()
}

// WithCycleID returns a new context containing the cycle ID.
func WithCycleID(ctx context.Context, cycleID string) context.Context {
	return context.WithValue(ctx, cycleIDKey, cycleID)
}

// WithSession returns a new context tagged with the account's session name.
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetCycleID returns the cycle ID stored in ctx, or "".
func GetCycleID(ctx context.Context) string {
	id, _ := ctx.Value(cycleIDKey).(string)
	return id
}

// GetSession returns the session name stored in ctx, or "".
func GetSession(ctx context.Context) string {
	s, _ := ctx.Value(sessionKey).(string)
	return s
}

// FromContext returns the default logger with session and cycle_id attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if s := GetSession(ctx); s != "" {
		log = log.With(AttrKeySession, s)
	}
	if id := GetCycleID(ctx); id != "" {
		log = log.With(AttrKeyCycleID, id)
	}
	return log
}
