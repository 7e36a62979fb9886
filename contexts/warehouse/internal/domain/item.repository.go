package domain

import "github.com/go-arrower/typedrepo/repository"

type (
	ElectronicsRepository = repository.QuantityRepository[ElectronicItem, ItemID]
	GroceryRepository     = repository.QuantityRepository[GroceryItem, ItemID]
)
