package alog

import (
	"context"
	"log/slog"
)

// NewNoop returns an implementation of Logger that discards everything.
// It is the default logger of the repositories and ideal as dependency in tests.
func NewNoop() *slog.Logger {
	return slog.New(noopHandler{})
}

type noopHandler struct{}

var _ slog.Handler = (*noopHandler)(nil)

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (n noopHandler) WithAttrs([]slog.Attr) slog.Handler { return n }
func (n noopHandler) WithGroup(string) slog.Handler      { return n }
