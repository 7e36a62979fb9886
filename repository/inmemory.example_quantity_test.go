package repository_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/typedrepo/repository"
)

type Crate struct {
	ID       int
	Label    string
	Quantity int
}

func (c Crate) Identity() int        { return c.ID }
func (c Crate) CurrentQuantity() int { return c.Quantity }

func (c Crate) WithQuantity(q int) Crate {
	c.Quantity = q

	return c
}

func Example_updateQuantity() {
	ctx := context.Background()

	repo := repository.NewMemoryQuantityRepository[Crate, int]()
	_ = repo.Insert(ctx, Crate{ID: 1, Label: "bolts", Quantity: 10})

	err := repo.Insert(ctx, Crate{ID: 1, Label: "nuts"})
	fmt.Println(errors.Is(err, repository.ErrAlreadyExists), err)

	_ = repo.UpdateQuantity(ctx, 1, 15)

	err = repo.UpdateQuantity(ctx, 1, -1)
	fmt.Println(errors.Is(err, repository.ErrInvalidValue), err)

	c, _ := repo.GetByID(ctx, 1)
	fmt.Println(c)

	// Output:
	// true already exists: id 1
	// true invalid value: negative quantity -1
	// {1 bolts 15}
}
