// Package application contains the use cases of the stock.
package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
)

func NewAddItemCommandHandler(repo domain.Repository) app.Command[AddItemCommand] {
	return &addItemCommandHandler{repo: repo}
}

type addItemCommandHandler struct {
	repo domain.Repository
}

type AddItemCommand struct {
	Item domain.InventoryItem
}

func (h *addItemCommandHandler) H(ctx context.Context, cmd AddItemCommand) error {
	if err := h.repo.Insert(ctx, cmd.Item); err != nil {
		return fmt.Errorf("could not add item: %w", err)
	}

	return nil
}
