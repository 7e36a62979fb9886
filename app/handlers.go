// Package app provides the use case types of the demo contexts
// and the decorators every use case is wrapped in.
package app

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/go-arrower/typedrepo/alog"
)

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Command produces side effects, e.g. mutate state.
type Command[C any] interface {
	H(ctx context.Context, cmd C) error
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The request is logged first and validated second.
func NewInstrumentedRequest[Req any, Res any](
	logger alog.Logger,
	validate *validator.Validate,
	req Request[Req, Res],
) Request[Req, Res] {
	return NewLoggedRequest(logger, NewValidatedRequest(validate, req))
}

// NewInstrumentedCommand is a convenience helper for easy dependency setup.
// The command is logged first and validated second.
func NewInstrumentedCommand[C any](
	logger alog.Logger,
	validate *validator.Validate,
	cmd Command[C],
) Command[C] {
	return NewLoggedCommand(logger, NewValidatedCommand(validate, cmd))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The query is logged first and validated second.
func NewInstrumentedQuery[Q any, Res any](
	logger alog.Logger,
	validate *validator.Validate,
	query Query[Q, Res],
) Query[Q, Res] {
	return NewLoggedQuery(logger, NewValidatedQuery(validate, query))
}

// useCaseName returns a printable name for the type of in,
// in the format of context.package.TypeName, e.g.: warehouse.application.IncreaseStockCommand.
// Outside a context it falls back to package.TypeName.
func useCaseName(in any) string {
	t := reflect.TypeOf(in)
	if t == nil {
		return "<nil>"
	}

	// example: github.com/go-arrower/typedrepo/contexts/warehouse/internal/application
	_, after, found := strings.Cut(t.PkgPath(), "/contexts/")
	if found {
		if context, _, ok := strings.Cut(after, "/internal/"); ok {
			return fmt.Sprintf("%s.%T", context, in)
		}
	}

	return fmt.Sprintf("%T", in)
}
