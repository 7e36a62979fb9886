package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
)

func NewUpdateQuantityCommandHandler[E domain.StockItem[E]](repo stockRepository[E]) app.Command[UpdateQuantityCommand] {
	return &updateQuantityCommandHandler[E]{repo: repo}
}

type updateQuantityCommandHandler[E domain.StockItem[E]] struct {
	repo stockRepository[E]
}

// UpdateQuantityCommand sets the quantity of an item.
// The repository rejects negative quantities.
type UpdateQuantityCommand struct {
	ID       domain.ItemID `validate:"gte=0"`
	Quantity int
}

func (h *updateQuantityCommandHandler[E]) H(ctx context.Context, cmd UpdateQuantityCommand) error {
	if err := h.repo.UpdateQuantity(ctx, cmd.ID, cmd.Quantity); err != nil {
		return fmt.Errorf("could not update quantity: %w", err)
	}

	return nil
}
