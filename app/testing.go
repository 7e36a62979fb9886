package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers you can use to easier test
// your calling code relying on this use case pattern.
//

var ErrUseCaseFailed = errors.New("use case failed")

// TestRequestHandler turns f into a Request.
func TestRequestHandler[Req any, Res any](f func(ctx context.Context, req Req) (Res, error)) Request[Req, Res] {
	return requestFunc[Req, Res](f)
}

type requestFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f requestFunc[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, req)
}

// TestCommandHandler turns f into a Command.
func TestCommandHandler[C any](f func(ctx context.Context, cmd C) error) Command[C] {
	return commandFunc[C](f)
}

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) H(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

// TestQueryHandler turns f into a Query.
func TestQueryHandler[Q any, Res any](f func(ctx context.Context, query Q) (Res, error)) Query[Q, Res] {
	return queryFunc[Q, Res](f)
}

type queryFunc[Q any, Res any] func(ctx context.Context, query Q) (Res, error)

func (f queryFunc[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, query)
}

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] {
	return TestRequestHandler(func(_ context.Context, _ Req) (Res, error) {
		return *new(Res), nil
	})
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return TestRequestHandler(func(_ context.Context, _ Req) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}

func TestSuccessCommandHandler[C any]() Command[C] {
	return TestCommandHandler(func(_ context.Context, _ C) error {
		return nil
	})
}

func TestFailureCommandHandler[C any]() Command[C] {
	return TestCommandHandler(func(_ context.Context, _ C) error {
		return ErrUseCaseFailed
	})
}

func TestSuccessQueryHandler[Q any, Res any]() Query[Q, Res] {
	return TestQueryHandler(func(_ context.Context, _ Q) (Res, error) {
		return *new(Res), nil
	})
}

func TestFailureQueryHandler[Q any, Res any]() Query[Q, Res] {
	return TestQueryHandler(func(_ context.Context, _ Q) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}
