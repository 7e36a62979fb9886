package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/application"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
)

func TestListItemsQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("all items", func(t *testing.T) {
		t.Parallel()

		handler := application.NewListItemsQueryHandler[domain.ElectronicItem](electronicsRepo(laptop, phone))

		items, err := handler.H(ctx, application.ListItemsQuery{})
		assert.NoError(t, err)
		assert.Equal(t, []domain.ElectronicItem{laptop, phone}, items)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		handler := application.NewListItemsQueryHandler[domain.ElectronicItem](electronicsRepo())

		items, err := handler.H(ctx, application.ListItemsQuery{})
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("low stock", func(t *testing.T) {
		t.Parallel()

		handler := application.NewListItemsQueryHandler[domain.ElectronicItem](electronicsRepo(laptop, phone))

		items, err := handler.H(ctx, application.ListItemsQuery{LowStockBelow: 5})
		assert.NoError(t, err)
		assert.Equal(t, []domain.ElectronicItem{phone}, items)
	})

	t.Run("invalid query", func(t *testing.T) {
		t.Parallel()

		handler := app.NewValidatedQuery(nil, application.NewListItemsQueryHandler[domain.ElectronicItem](electronicsRepo()))

		_, err := handler.H(ctx, application.ListItemsQuery{LowStockBelow: -1})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}
