package alog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/typedrepo/alog"
)

const applicationMsg = "application message"

var (
	ctx          = context.Background()
	errSomething = errors.New("some error")
)

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (failingHandler) Handle(context.Context, slog.Record) error { return errSomething }

func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h failingHandler) WithGroup(string) slog.Handler      { return h }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("level info as default level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, nil)

		logger := alog.New(alog.WithHandler(h))

		logger.Log(ctx, alog.LevelInfo, "library info")
		logger.Log(ctx, alog.LevelDebug, "library debug")
		logger.Log(ctx, slog.LevelDebug, "application debug msg")
		assert.Empty(t, buf.String())

		logger.Info("application info msg")
		assert.Contains(t, buf.String(), `msg="application info msg"`)
	})

	t.Run("info is default level", func(t *testing.T) {
		t.Parallel()

		logger := alog.New()
		assert.Equal(t, slog.LevelInfo, alog.Unwrap(logger).Level())
	})

	t.Run("set level", func(t *testing.T) {
		t.Parallel()

		logger := alog.New(alog.WithLevel(slog.LevelDebug))
		assert.Equal(t, slog.LevelDebug, alog.Unwrap(logger).Level())

		logger = alog.New(alog.WithLevel(alog.LevelDebug))
		assert.Equal(t, alog.LevelDebug, alog.Unwrap(logger).Level())
	})

	t.Run("set multiple handlers", func(t *testing.T) {
		t.Parallel()

		buf := bytes.Buffer{}
		h0 := slog.NewTextHandler(&buf, nil)
		h1 := slog.NewJSONHandler(&buf, nil)

		logger := alog.New(
			alog.WithHandler(h0),
			alog.WithHandler(h1),
		)
		logger.Info(applicationMsg)

		assert.Contains(t, buf.String(), `msg="application message"`)
		assert.Contains(t, buf.String(), `"msg":"application message"`)
	})
}

func TestNewDevelopment(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := alog.NewDevelopment(buf, alog.LevelDebug)

	logger.Log(ctx, alog.LevelDebug, applicationMsg)

	assert.Contains(t, buf.String(), "level=TYPEDREPO:DEBUG")
	assert.NotContains(t, buf.String(), "source=", "development output should stay short")
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, alog.Unwrap(alog.New()))
	assert.NotNil(t, alog.Unwrap(alog.Test(t)))
	assert.Nil(t, alog.Unwrap(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
}

func TestFanoutHandler_SetLevel(t *testing.T) {
	t.Parallel()

	t.Run("log level is changed for all handlers", func(t *testing.T) {
		t.Parallel()

		buf0 := &bytes.Buffer{}
		h0 := slog.NewTextHandler(buf0, nil)
		buf1 := &bytes.Buffer{}
		h1 := slog.NewTextHandler(buf1, nil)

		logger := alog.New(
			alog.WithHandler(h0),
			alog.WithHandler(h1),
		)

		logger.Debug(applicationMsg)
		assert.NotContains(t, buf0.String(), applicationMsg)
		assert.NotContains(t, buf1.String(), applicationMsg)

		alog.Unwrap(logger).SetLevel(slog.LevelDebug)
		logger.Debug(applicationMsg)
		assert.Contains(t, buf0.String(), applicationMsg)
		assert.Contains(t, buf1.String(), applicationMsg)
	})

	t.Run("log level changes for all groups", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, nil)

		logger1 := alog.New(alog.WithHandler(h))
		logger2 := logger1.WithGroup("componentA")

		logger2.Debug("hello", slog.String("some", "attr"))
		assert.NotContains(t, buf.String(), "componentA.some=attr")

		// change level of logger1 and expect it to change for logger2 as well
		alog.Unwrap(logger1).SetLevel(slog.LevelDebug)

		logger2.Debug("hello", slog.String("some", "attr"))
		assert.Contains(t, buf.String(), "componentA.some=attr")
	})

	t.Run("change levels for loggers with attr", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, nil)

		logger1 := alog.New(alog.WithHandler(h))
		logger2 := logger1.With(slog.String("some", "attr"))

		logger2.Debug("hello")
		assert.NotContains(t, buf.String(), "some")

		alog.Unwrap(logger1).SetLevel(slog.LevelDebug)
		logger2.Debug("hello2")

		assert.Contains(t, buf.String(), "hello2")
		assert.Contains(t, buf.String(), "some=attr")
	})

	t.Run("ignore handler specific level settings", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelError})

		logger := alog.New(
			alog.WithHandler(h),
		)

		logger.Info(applicationMsg)
		assert.Contains(t, buf.String(), applicationMsg)
	})
}

func TestFanoutHandler_Handle(t *testing.T) {
	t.Parallel()

	t.Run("handler fails", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, nil)

		logger := alog.New(
			alog.WithHandler(h),
			alog.WithHandler(failingHandler{}),
		)

		logger.Info(applicationMsg)
		assert.Contains(t, buf.String(), applicationMsg, "other handlers should still log")
	})

	t.Run("log attributes in ctx", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := slog.NewTextHandler(buf, nil)
		logger := alog.New(alog.WithHandler(h))

		logger = logger.WithGroup("groupPrefix")
		logger.InfoContext(alog.AddAttrs(ctx,
			slog.String("some", "attr"),
			slog.Int("other", 1337),
		), applicationMsg)

		assert.Contains(t, buf.String(), "groupPrefix.some=attr")
		assert.Contains(t, buf.String(), "groupPrefix.other=1337")
	})
}
