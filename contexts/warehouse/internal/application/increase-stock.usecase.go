package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
)

func NewIncreaseStockRequestHandler[E domain.StockItem[E]](repo stockRepository[E]) app.Request[IncreaseStockRequest, IncreaseStockResponse] {
	return &increaseStockRequestHandler[E]{repo: repo}
}

type increaseStockRequestHandler[E domain.StockItem[E]] struct {
	repo stockRepository[E]
}

type (
	IncreaseStockRequest struct {
		ID domain.ItemID `validate:"gte=0"`
		By int
	}
	IncreaseStockResponse struct {
		ID       domain.ItemID
		Quantity int
	}
)

func (h *increaseStockRequestHandler[E]) H(ctx context.Context, req IncreaseStockRequest) (IncreaseStockResponse, error) {
	item, err := h.repo.GetByID(ctx, req.ID)
	if err != nil {
		return IncreaseStockResponse{}, fmt.Errorf("could not get item: %w", err)
	}

	quantity, err := domain.IncreaseStock(item.CurrentQuantity(), req.By)
	if err != nil {
		return IncreaseStockResponse{}, err
	}

	err = h.repo.UpdateQuantity(ctx, req.ID, quantity)
	if err != nil {
		return IncreaseStockResponse{}, fmt.Errorf("could not increase stock: %w", err)
	}

	return IncreaseStockResponse{ID: req.ID, Quantity: quantity}, nil
}
