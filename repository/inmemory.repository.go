package repository

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-arrower/typedrepo/alog"
)

// NewMemoryRepository returns an implementation of Repository for the given entity E.
// If your repository needs additional methods, you can embed this repo into your own implementation to extend
// your own repository easily to your use case. See the examples in the test files.
func NewMemoryRepository[E Entity[ID], ID id](opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Data:  make(map[ID]E),
		order: []ID{},
		repoConfig: repoConfig{
			logger: alog.NewNoop(),
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	return repo
}

// MemoryRepository implements Repository in a generic way.
//
// Items are stored by value. GetAll and the Find methods return copies,
// so changing a returned item does not change the repository.
// If E is a pointer type or holds references, those are shared.
type MemoryRepository[E Entity[ID], ID id] struct {
	// Data is the repository's collection. It is exposed in case you're extending the repository.
	// PREVENT writing to Data directly, go through the repository methods,
	// as the insertion order is tracked separately.
	Data  map[ID]E
	order []ID

	repoConfig
}

func (repo *MemoryRepository[E, ID]) Insert(ctx context.Context, entity E) error {
	id := entity.Identity()
	if id < 0 {
		return repo.reject(ctx, "insert", fmt.Errorf("%w: negative id %d", ErrInvalidValue, id))
	}

	if _, found := repo.Data[id]; found {
		return repo.reject(ctx, "insert", fmt.Errorf("%w: id %d", ErrAlreadyExists, id))
	}

	repo.Data[id] = entity
	repo.order = append(repo.order, id)

	return nil
}

func (repo *MemoryRepository[E, ID]) Add(ctx context.Context, entity E) error {
	return repo.Insert(ctx, entity)
}

func (repo *MemoryRepository[E, ID]) GetByID(ctx context.Context, id ID) (E, error) { //nolint:ireturn,lll // valid use of generics
	if e, ok := repo.Data[id]; ok {
		return e, nil
	}

	return *new(E), repo.reject(ctx, "get", fmt.Errorf("%w: id %d", ErrNotFound, id))
}

// Update replaces the stored item with the same identity and keeps its position.
func (repo *MemoryRepository[E, ID]) Update(ctx context.Context, entity E) error {
	id := entity.Identity()

	if _, found := repo.Data[id]; !found {
		return repo.reject(ctx, "update", fmt.Errorf("%w: id %d", ErrNotFound, id))
	}

	repo.Data[id] = entity

	return nil
}

func (repo *MemoryRepository[E, ID]) Remove(ctx context.Context, id ID) error {
	if _, found := repo.Data[id]; !found {
		return repo.reject(ctx, "remove", fmt.Errorf("%w: id %d", ErrNotFound, id))
	}

	delete(repo.Data, id)
	repo.order = slices.DeleteFunc(repo.order, func(i ID) bool { return i == id })

	return nil
}

// RemoveBy removes the first item, in insertion order, the predicate matches.
func (repo *MemoryRepository[E, ID]) RemoveBy(ctx context.Context, predicate Predicate[E]) error {
	e, err := repo.FindBy(ctx, predicate)
	if err != nil {
		return err
	}

	return repo.Remove(ctx, e.Identity())
}

func (repo *MemoryRepository[E, ID]) GetAll(_ context.Context) ([]E, error) {
	result := make([]E, 0, len(repo.order))

	for _, id := range repo.order {
		result = append(result, repo.Data[id])
	}

	return result, nil
}

// FindBy returns the first item, in insertion order, the predicate matches.
func (repo *MemoryRepository[E, ID]) FindBy(ctx context.Context, predicate Predicate[E]) (E, error) { //nolint:ireturn,lll // valid use of generics
	for _, id := range repo.order {
		if e := repo.Data[id]; predicate(e) {
			return e, nil
		}
	}

	return *new(E), repo.reject(ctx, "find", fmt.Errorf("%w: no item matches", ErrNotFound))
}

func (repo *MemoryRepository[E, ID]) FindAll(_ context.Context, predicate Predicate[E]) ([]E, error) {
	result := []E{}

	for _, id := range repo.order {
		if e := repo.Data[id]; predicate(e) {
			result = append(result, e)
		}
	}

	return result, nil
}

func (repo *MemoryRepository[E, ID]) Exists(_ context.Context, id ID) (bool, error) {
	_, ok := repo.Data[id]

	return ok, nil
}

// Count returns the number of items GetAll returns.
func (repo *MemoryRepository[E, ID]) Count(_ context.Context) (int, error) {
	return len(repo.order), nil
}

func (repo *MemoryRepository[E, ID]) Clear(_ context.Context) error {
	clear(repo.Data)
	repo.order = repo.order[:0]

	return nil
}

// reject reports a failed operation to the logger and returns err unchanged.
func (repo *MemoryRepository[E, ID]) reject(ctx context.Context, op string, err error) error {
	repo.logger.Log(ctx, alog.LevelDebug, "repository operation rejected",
		slog.String("op", op),
		slog.String("entity", fmt.Sprintf("%T", *new(E))),
		slog.String("err", err.Error()),
	)

	return err
}
