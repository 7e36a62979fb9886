package repository

import (
	"context"
	"errors"

	"github.com/go-arrower/typedrepo/alog"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidValue  = errors.New("invalid value")
)

// id are the types allowed as an identity key used in the generic Repository.
// Identities are caller assigned and MUST NOT be negative.
type id interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Entity is the capability an item needs to be stored in a Repository.
type Entity[ID id] interface {
	Identity() ID
}

// Quantified is an Entity with a mutable quantity, or an equivalent numeric attribute
// like a score or an amount.
// WithQuantity returns a copy of the item with the quantity replaced; it must not modify the receiver.
type Quantified[E any, ID id] interface {
	Entity[ID]
	CurrentQuantity() int
	WithQuantity(quantity int) E
}

// Predicate selects items in FindBy, FindAll, and RemoveBy.
type Predicate[E any] func(e E) bool

// Repository is a general purpose interface documenting which methods are available by the generic MemoryRepository.
// If your repository needs additional methods, you can extend your own repository easily to tune it to your use case.
// See the examples in the test files.
type Repository[E Entity[ID], ID id] interface { //nolint:interfacebloat // showcase of all methods that are possible
	Insert(ctx context.Context, entity E) error
	Add(ctx context.Context, entity E) error
	GetByID(ctx context.Context, id ID) (E, error)
	Update(ctx context.Context, entity E) error
	Remove(ctx context.Context, id ID) error
	RemoveBy(ctx context.Context, predicate Predicate[E]) error

	// GetAll returns a snapshot of all items in insertion order.
	GetAll(ctx context.Context) ([]E, error)
	FindBy(ctx context.Context, predicate Predicate[E]) (E, error)
	FindAll(ctx context.Context, predicate Predicate[E]) ([]E, error)
	Exists(ctx context.Context, id ID) (bool, error)
	Count(ctx context.Context) (int, error)

	Clear(ctx context.Context) error
}

// QuantityRepository is a Repository for items with a quantity.
type QuantityRepository[E Quantified[E, ID], ID id] interface {
	Repository[E, ID]
	UpdateQuantity(ctx context.Context, id ID, quantity int) error
}

// Option sets optional properties of a repository.
type Option func(config *repoConfig)

// WithLogger sets the logger the repository reports rejected operations to.
func WithLogger(logger alog.Logger) Option { //nolint:revive // unexported-return is OK for this option
	return func(config *repoConfig) {
		config.logger = logger
	}
}

type repoConfig struct {
	logger alog.Logger
}
