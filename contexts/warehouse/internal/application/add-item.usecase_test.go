package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/application"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

func TestAddItemCommandHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("add item", func(t *testing.T) {
		t.Parallel()

		repo := repository.Test[domain.GroceryItem, domain.ItemID](t)
		handler := application.NewAddItemCommandHandler[domain.GroceryItem](repo)

		err := handler.H(ctx, application.AddItemCommand[domain.GroceryItem]{Item: milk})
		assert.NoError(t, err)

		repo.Total(1)
		repo.Contains(milk.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()

		repo := electronicsRepo(laptop)
		handler := application.NewAddItemCommandHandler[domain.ElectronicItem](repo)

		err := handler.H(ctx, application.AddItemCommand[domain.ElectronicItem]{Item: laptop})
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	})

	t.Run("invalid item", func(t *testing.T) {
		t.Parallel()

		repo := repository.Test[domain.ElectronicItem, domain.ItemID](t)
		handler := app.NewValidatedCommand(nil, application.NewAddItemCommandHandler[domain.ElectronicItem](repo))

		err := handler.H(ctx, application.AddItemCommand[domain.ElectronicItem]{Item: domain.ElectronicItem{ID: 3}})
		assert.ErrorIs(t, err, app.ErrInvalidInput)

		repo.Empty()
	})
}
