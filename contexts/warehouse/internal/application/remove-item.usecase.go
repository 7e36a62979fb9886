package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
)

func NewRemoveItemCommandHandler[E domain.StockItem[E]](repo stockRepository[E]) app.Command[RemoveItemCommand] {
	return &removeItemCommandHandler[E]{repo: repo}
}

type removeItemCommandHandler[E domain.StockItem[E]] struct {
	repo stockRepository[E]
}

type RemoveItemCommand struct {
	ID domain.ItemID `validate:"gte=0"`
}

func (h *removeItemCommandHandler[E]) H(ctx context.Context, cmd RemoveItemCommand) error {
	if err := h.repo.Remove(ctx, cmd.ID); err != nil {
		return fmt.Errorf("could not remove item: %w", err)
	}

	return nil
}
