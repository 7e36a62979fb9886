package application

import (
	"context"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

func NewLoadInventoryRequestHandler(repo domain.Repository, store repository.Store) app.Request[LoadInventoryRequest, LoadInventoryResponse] {
	return &loadInventoryRequestHandler{repo: repo, store: store}
}

type loadInventoryRequestHandler struct {
	repo  domain.Repository
	store repository.Store
}

type (
	// LoadInventoryRequest adds the items saved under Name to the repository.
	LoadInventoryRequest struct {
		Name string `validate:"required"`
	}

	// LoadInventoryResponse is returned even if some items could not be loaded,
	// e.g. because their id is taken already.
	LoadInventoryResponse struct {
		Loaded int
	}
)

func (h *loadInventoryRequestHandler) H(ctx context.Context, req LoadInventoryRequest) (LoadInventoryResponse, error) {
	n, err := repository.Restore[domain.InventoryItem, domain.ItemID](ctx, h.repo, h.store, req.Name)

	return LoadInventoryResponse{Loaded: n}, err //nolint:wrapcheck // Restore names the data set
}
