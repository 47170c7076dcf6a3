package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Slog exposes the logger through the standard library facade so packages
// written against *slog.Logger still emit through the shared zap core.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(&slogHandler{zap: l.Zap()})
}

type slogHandler struct {
	zap    *zap.Logger
	groups []string
	attrs  []zap.Field
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.zap.Core().Enabled(zapLevelFromSlog(level))
}

func (h *slogHandler) Handle(_ context.Context, rec slog.Record) error {
	fields := make([]zap.Field, 0, len(h.attrs)+rec.NumAttrs())
	fields = append(fields, h.attrs...)
	rec.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.zapField(a))
		return true
	})

	if ce := h.zap.Check(zapLevelFromSlog(rec.Level), rec.Message); ce != nil {
		if !rec.Time.IsZero() {
			ce.Time = rec.Time
		}
		ce.Write(fields...)
	}
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.zapField(a))
	}
	return clone
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *slogHandler) clone() *slogHandler {
	return &slogHandler{
		zap:    h.zap,
		groups: append([]string(nil), h.groups...),
		attrs:  append([]zap.Field(nil), h.attrs...),
	}
}

func (h *slogHandler) zapField(a slog.Attr) zap.Field {
	key := a.Key
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}

	value := a.Value.Resolve().Any()
	if err, ok := value.(error); ok {
		return zap.NamedError(key, err)
	}
	return zap.Any(key, value)
}

func zapLevelFromSlog(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
