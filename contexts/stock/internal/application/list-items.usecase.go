package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
)

func NewListItemsQueryHandler(repo domain.Repository) app.Query[ListItemsQuery, ListItemsResponse] {
	return &listItemsQueryHandler{repo: repo}
}

type listItemsQueryHandler struct {
	repo domain.Repository
}

type (
	ListItemsQuery    struct{}
	ListItemsResponse struct {
		Items      []domain.InventoryItem
		TotalUnits int
	}
)

func (h *listItemsQueryHandler) H(ctx context.Context, _ ListItemsQuery) (ListItemsResponse, error) {
	items, err := h.repo.GetAll(ctx)
	if err != nil {
		return ListItemsResponse{}, fmt.Errorf("could not list items: %w", err)
	}

	return ListItemsResponse{
		Items:      items,
		TotalUnits: domain.TotalUnits(items),
	}, nil
}
