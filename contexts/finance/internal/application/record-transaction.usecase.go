// Package application contains the use cases of the finance context.
package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/finance/internal/domain"
)

func NewRecordTransactionCommandHandler(repo domain.Repository) app.Command[RecordTransactionCommand] {
	return &recordTransactionCommandHandler{repo: repo}
}

type recordTransactionCommandHandler struct {
	repo domain.Repository
}

type RecordTransactionCommand struct {
	Transaction domain.Transaction
}

func (h *recordTransactionCommandHandler) H(ctx context.Context, cmd RecordTransactionCommand) error {
	if err := h.repo.Insert(ctx, cmd.Transaction); err != nil {
		return fmt.Errorf("could not record transaction: %w", err)
	}

	return nil
}
