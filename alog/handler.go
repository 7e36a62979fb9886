package alog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(logger *fanoutHandler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *fanoutHandler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use LevelLogger.SetLevel:
// Unwrap(logger).SetLevel(LevelInfo).
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *fanoutHandler) {
		l.level.Set(level)
	}
}

// New returns a logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own loggers.
// For an example of options at work, see NewDevelopment.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newFanoutHandler(opts...))
}

// NewDevelopment returns a logger writing human-readable text to w.
func NewDevelopment(w io.Writer, level slog.Level) *slog.Logger {
	return New(
		WithLevel(level),
		WithHandler(slog.NewTextHandler(w, getDebugHandlerOptions())),
	)
}

// newFanoutHandler implements the main logging logic.
// It does not output anything directly and relies on other slog.Handlers to do so.
// If no Handlers are provided via WithHandler, a default JSON handler logs to os.Stderr.
func newFanoutHandler(opts ...LoggerOpt) *fanoutHandler {
	logger := &fanoutHandler{
		handlers: []slog.Handler{},
		level:    &slog.LevelVar{},
	}
	logger.level.Set(slog.LevelInfo)

	for _, opt := range opts {
		opt(logger)
	}

	hasCustomHandlers := len(logger.handlers) != 0
	if !hasCustomHandlers {
		logger.handlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	}

	return logger
}

// fanoutHandler calls all its handlers with the same record.
type fanoutHandler struct {
	// level reports the minimum record level that will be logged.
	// This IS the Level for all handlers.
	// The level of individual handlers set via WithHandler is ignored.
	level *slog.LevelVar

	// handlers is a list which all get called with the same log message.
	handlers []slog.Handler
}

var (
	_ slog.Handler = (*fanoutHandler)(nil)
	_ LevelLogger  = (*fanoutHandler)(nil)
)

func (l *fanoutHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= l.level.Level()
}

func (l *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := FromContext(ctx); ok {
		record.AddAttrs(attrs...)
	}

	var retErr error

	for _, h := range l.handlers {
		err := h.Handle(ctx, record.Clone())
		retErr = errors.Join(retErr, err)
	}

	return retErr
}

func (l *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	return &fanoutHandler{
		handlers: handlers,
		level:    l.level,
	}
}

func (l *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithGroup(name)
	}

	return &fanoutHandler{
		handlers: handlers,
		level:    l.level,
	}
}

// SetLevel changes the level for all loggers set with WithHandler().
// Even the ones "copied" via any WithX method.
func (l *fanoutHandler) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the log level of the handler.
func (l *fanoutHandler) Level() slog.Level {
	return l.level.Level()
}

func (l *fanoutHandler) NumHandlers() int {
	return len(l.handlers)
}

// LevelLogger offers control over the logger's level at run time.
// Unwrap a logger to get access to this features.
type LevelLogger interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap unwraps the given logger and returns a LevelLogger.
// In case of an invalid implementation of logger,
// it returns nil.
func Unwrap(logger Logger) LevelLogger { //nolint:ireturn // interface required to return a TestLogger and fanoutHandler
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	sl, ok := logger.(*slog.Logger)
	if !ok {
		return nil
	}

	if l, ok := sl.Handler().(*fanoutHandler); ok {
		return l
	}

	return nil
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       nil, // this level is ignored, fanoutHandler's level is used for all handlers.
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions is to keep the log output more readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}
