package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
)

func NewAddItemCommandHandler[E domain.StockItem[E]](repo stockRepository[E]) app.Command[AddItemCommand[E]] {
	return &addItemCommandHandler[E]{repo: repo}
}

type addItemCommandHandler[E domain.StockItem[E]] struct {
	repo stockRepository[E]
}

type AddItemCommand[E any] struct {
	Item E
}

func (h *addItemCommandHandler[E]) H(ctx context.Context, cmd AddItemCommand[E]) error {
	if err := h.repo.Insert(ctx, cmd.Item); err != nil {
		return fmt.Errorf("could not add item: %w", err)
	}

	return nil
}
