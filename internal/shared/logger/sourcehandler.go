package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the caller's source location to records at or above
// a threshold level. The wrapped handler must have AddSource disabled.
type sourceHandler struct {
	handler    slog.Handler
	sourceFrom slog.Level
}

// NewSourceHandler wraps handler so that only records of level sourceFrom or
// higher carry a source attribute.
func NewSourceHandler(handler slog.Handler, sourceFrom slog.Level) slog.Handler {
	return &sourceHandler{handler: handler, sourceFrom: sourceFrom}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.sourceFrom && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), sourceFrom: h.sourceFrom}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), sourceFrom: h.sourceFrom}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
