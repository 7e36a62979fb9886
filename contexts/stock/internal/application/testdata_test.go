package application_test

import (
	"context"
	"time"

	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

var (
	ctx = context.Background()

	cement = domain.InventoryItem{ID: 1, Name: "Cement", Quantity: 40, DateAdded: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	nails  = domain.InventoryItem{ID: 2, Name: "Nails", Quantity: 500, DateAdded: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)}
)

func inventoryRepo(items ...domain.InventoryItem) *repository.MemoryQuantityRepository[domain.InventoryItem, domain.ItemID] {
	repo := repository.NewMemoryQuantityRepository[domain.InventoryItem, domain.ItemID]()

	for _, item := range items {
		_ = repo.Insert(ctx, item)
	}

	return repo
}
