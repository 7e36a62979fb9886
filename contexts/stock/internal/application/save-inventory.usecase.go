package application

import (
	"context"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

func NewSaveInventoryCommandHandler(repo domain.Repository, store repository.Store) app.Command[SaveInventoryCommand] {
	return &saveInventoryCommandHandler{repo: repo, store: store}
}

type saveInventoryCommandHandler struct {
	repo  domain.Repository
	store repository.Store
}

// SaveInventoryCommand writes all items to the store under Name, replacing what was saved before.
type SaveInventoryCommand struct {
	Name string `validate:"required"`
}

func (h *saveInventoryCommandHandler) H(ctx context.Context, cmd SaveInventoryCommand) error {
	return repository.Dump[domain.InventoryItem, domain.ItemID](ctx, h.repo, h.store, cmd.Name) //nolint:wrapcheck // Dump names the data set
}
