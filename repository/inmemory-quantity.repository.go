package repository

import (
	"context"
	"fmt"
)

// NewMemoryQuantityRepository returns an implementation of QuantityRepository for the given entity E.
func NewMemoryQuantityRepository[E Quantified[E, ID], ID id](opts ...Option) *MemoryQuantityRepository[E, ID] {
	return &MemoryQuantityRepository[E, ID]{
		MemoryRepository: NewMemoryRepository[E, ID](opts...),
	}
}

// MemoryQuantityRepository extends MemoryRepository with UpdateQuantity.
type MemoryQuantityRepository[E Quantified[E, ID], ID id] struct {
	*MemoryRepository[E, ID]
}

// UpdateQuantity replaces the quantity of the item stored under id.
// The quantity is validated before the item is looked up,
// so a negative quantity for an unknown id returns ErrInvalidValue.
func (repo *MemoryQuantityRepository[E, ID]) UpdateQuantity(ctx context.Context, id ID, quantity int) error {
	if quantity < 0 {
		return repo.reject(ctx, "update quantity", fmt.Errorf("%w: negative quantity %d", ErrInvalidValue, quantity))
	}

	e, found := repo.Data[id]
	if !found {
		return repo.reject(ctx, "update quantity", fmt.Errorf("%w: id %d", ErrNotFound, id))
	}

	repo.Data[id] = e.WithQuantity(quantity)

	return nil
}

// Update replaces the stored item with the same identity.
// An item with a negative quantity is rejected with ErrInvalidValue, as in UpdateQuantity.
func (repo *MemoryQuantityRepository[E, ID]) Update(ctx context.Context, entity E) error {
	if q := entity.CurrentQuantity(); q < 0 {
		return repo.reject(ctx, "update", fmt.Errorf("%w: negative quantity %d", ErrInvalidValue, q))
	}

	return repo.MemoryRepository.Update(ctx, entity)
}
