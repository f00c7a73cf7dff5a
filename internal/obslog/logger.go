// Package obslog builds the structured logger the CLI and engine entry
// points log through, and the context helper that carries extra attributes
// into every record emitted against that context. It mirrors the
// pkg/logging shape the original CLI's root command imported, backed by
// slog and lumberjack for rotation when logging to a file.
package obslog

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

// Logger builds a slog.Logger writing to w. When json is true records are
// encoded as JSON; otherwise a human-readable text handler is used. The
// returned logger's handler is wrapped so attributes attached to a context
// via AppendCtx are merged into every record logged with a *Context method.
func Logger(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(&ctxHandler{Handler: handler})
}

// RotatingWriter returns an io.Writer that rotates path once it exceeds
// maxSizeMB, keeping maxBackups old files, each compressed.
func RotatingWriter(path string, maxSizeMB, maxBackups int) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

// AppendCtx returns a context carrying extra slog attributes that every
// record logged through that context (via the *Context logging methods)
// will include, in addition to whatever AppendCtx was already called with
// on an ancestor context.
func AppendCtx(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		merged := make([]slog.Attr, 0, len(existing)+len(attrs))
		merged = append(merged, existing...)
		merged = append(merged, attrs...)
		return context.WithValue(ctx, ctxKey{}, merged)
	}
	return context.WithValue(ctx, ctxKey{}, attrs)
}

// ctxHandler decorates a slog.Handler so Handle pulls attributes stashed by
// AppendCtx off the record's context and folds them in.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithGroup(name)}
}
