package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
)

func NewListItemsQueryHandler[E domain.StockItem[E]](repo stockRepository[E]) app.Query[ListItemsQuery, []E] {
	return &listItemsQueryHandler[E]{repo: repo}
}

type listItemsQueryHandler[E domain.StockItem[E]] struct {
	repo stockRepository[E]
}

// ListItemsQuery returns all items in the order they were added.
// If LowStockBelow is set, only items with fewer units are returned.
type ListItemsQuery struct {
	LowStockBelow int `validate:"gte=0"`
}

func (h *listItemsQueryHandler[E]) H(ctx context.Context, query ListItemsQuery) ([]E, error) {
	items, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list items: %w", err)
	}

	if query.LowStockBelow > 0 {
		return domain.LowStock(items, query.LowStockBelow), nil
	}

	return items, nil
}
