// Package application contains the use cases of the warehouse.
// All handlers are generic over the kind of stock item, so each kind of item
// gets its own set of use cases bound to its own repository.
package application

import (
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

type stockRepository[E domain.StockItem[E]] interface {
	repository.QuantityRepository[E, domain.ItemID]
}
