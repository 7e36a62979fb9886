package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-arrower/typedrepo/alog"
)

func NewLoggedRequest[Req any, Res any](logger alog.Logger, handler Request[Req, Res]) Request[Req, Res] {
	return &requestLoggingDecorator[Req, Res]{
		logger: logger,
		base:   handler,
	}
}

type requestLoggingDecorator[Req any, Res any] struct {
	logger alog.Logger
	base   Request[Req, Res]
}

func (d *requestLoggingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	start := time.Now()
	name := useCaseName(req)

	d.logger.DebugContext(ctx, "executing request", slog.String("use_case", name))

	res, err := d.base.H(ctx, req)
	logOutcome(ctx, d.logger, "request", name, start, err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}

func NewLoggedCommand[C any](logger alog.Logger, handler Command[C]) Command[C] {
	return &commandLoggingDecorator[C]{
		logger: logger,
		base:   handler,
	}
}

type commandLoggingDecorator[C any] struct {
	logger alog.Logger
	base   Command[C]
}

func (d *commandLoggingDecorator[C]) H(ctx context.Context, cmd C) error {
	start := time.Now()
	name := useCaseName(cmd)

	d.logger.DebugContext(ctx, "executing command", slog.String("use_case", name))

	err := d.base.H(ctx, cmd)
	logOutcome(ctx, d.logger, "command", name, start, err)

	return err //nolint:wrapcheck // decorate but not change anything
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, handler Query[Q, Res]) Query[Q, Res] {
	return &queryLoggingDecorator[Q, Res]{
		logger: logger,
		base:   handler,
	}
}

type queryLoggingDecorator[Q any, Res any] struct {
	logger alog.Logger
	base   Query[Q, Res]
}

func (d *queryLoggingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	start := time.Now()
	name := useCaseName(query)

	d.logger.DebugContext(ctx, "executing query", slog.String("use_case", name))

	res, err := d.base.H(ctx, query)
	logOutcome(ctx, d.logger, "query", name, start, err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}

func logOutcome(ctx context.Context, logger alog.Logger, kind string, name string, start time.Time, err error) {
	attrs := []slog.Attr{
		slog.String("use_case", name),
		slog.Duration("duration", time.Since(start)),
	}

	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "failed to execute "+kind, append(attrs, slog.String("error", err.Error()))...)
		return
	}

	logger.LogAttrs(ctx, slog.LevelDebug, kind+" executed successfully", attrs...)
}
