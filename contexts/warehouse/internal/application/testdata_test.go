package application_test

import (
	"context"
	"time"

	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

var (
	ctx = context.Background()

	laptop = domain.ElectronicItem{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24}
	phone  = domain.ElectronicItem{ID: 2, Name: "Smartphone", Quantity: 3, Brand: "Samsung", WarrantyMonths: 12}

	milk = domain.GroceryItem{ID: 1, Name: "Milk", Quantity: 30, ExpiryDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
)

func electronicsRepo(items ...domain.ElectronicItem) *repository.MemoryQuantityRepository[domain.ElectronicItem, domain.ItemID] {
	repo := repository.NewMemoryQuantityRepository[domain.ElectronicItem, domain.ItemID]()

	for _, item := range items {
		_ = repo.Insert(ctx, item)
	}

	return repo
}
