package cli

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// kernelHandler forwards the kernel's slog records to the process-wide
// logrus logger so --verbose output from every layer shares one formatter.
type kernelHandler struct {
	fields logrus.Fields
}

func (h kernelHandler) Enabled(_ context.Context, level slog.Level) bool {
	return logrus.IsLevelEnabled(logrusLevel(level))
}

func (h kernelHandler) Handle(_ context.Context, r slog.Record) error {
	fields := logrus.Fields{}
	for k, v := range h.fields {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})
	logrus.WithFields(fields).Log(logrusLevel(r.Level), r.Message)
	return nil
}

func (h kernelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := logrus.Fields{}
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		fields[a.Key] = a.Value.Any()
	}
	return kernelHandler{fields: fields}
}

// WithGroup is part of slog.Handler; the kernel logs flat records.
func (h kernelHandler) WithGroup(string) slog.Handler { return h }

func logrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	}
	return logrus.DebugLevel
}
