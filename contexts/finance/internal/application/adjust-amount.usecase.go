package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/finance/internal/domain"
)

func NewAdjustAmountCommandHandler(repo domain.Repository) app.Command[AdjustAmountCommand] {
	return &adjustAmountCommandHandler{repo: repo}
}

type adjustAmountCommandHandler struct {
	repo domain.Repository
}

// AdjustAmountCommand corrects the amount of a recorded transaction.
type AdjustAmountCommand struct {
	ID     domain.TransactionID
	Amount int `validate:"gt=0"`
}

func (h *adjustAmountCommandHandler) H(ctx context.Context, cmd AdjustAmountCommand) error {
	if err := h.repo.UpdateQuantity(ctx, cmd.ID, cmd.Amount); err != nil {
		return fmt.Errorf("could not adjust amount of transaction %d: %w", cmd.ID, err)
	}

	return nil
}
