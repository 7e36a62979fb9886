package application_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/typedrepo/contexts/stock/internal/application"
	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

func TestSaveAndLoadInventory(t *testing.T) {
	t.Parallel()

	for _, format := range repository.Formats() {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			store, err := repository.NewStore(format, t.TempDir())
			require.NoError(t, err)

			if closer, ok := store.(io.Closer); ok {
				t.Cleanup(func() { _ = closer.Close() })
			}

			save := application.NewSaveInventoryCommandHandler(inventoryRepo(cement, nails), store)

			err = save.H(ctx, application.SaveInventoryCommand{Name: "inventory"})
			require.NoError(t, err)

			fresh := inventoryRepo()
			load := application.NewLoadInventoryRequestHandler(fresh, store)

			res, err := load.H(ctx, application.LoadInventoryRequest{Name: "inventory"})
			assert.NoError(t, err)
			assert.Equal(t, 2, res.Loaded)

			all, _ := fresh.GetAll(ctx)
			assert.Equal(t, []domain.InventoryItem{cement, nails}, all)

			t.Run("load again", func(t *testing.T) {
				res, err := load.H(ctx, application.LoadInventoryRequest{Name: "inventory"})
				assert.ErrorIs(t, err, repository.ErrAlreadyExists)
				assert.Zero(t, res.Loaded)

				count, _ := fresh.Count(ctx)
				assert.Equal(t, 2, count)
			})
		})
	}
}

func TestLoadInventoryRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("nothing saved", func(t *testing.T) {
		t.Parallel()

		load := application.NewLoadInventoryRequestHandler(inventoryRepo(), repository.NewJSONStore(t.TempDir()))

		res, err := load.H(ctx, application.LoadInventoryRequest{Name: "inventory"})
		assert.ErrorIs(t, err, repository.ErrLoad)
		assert.Zero(t, res.Loaded)
	})

	t.Run("partial load", func(t *testing.T) {
		t.Parallel()

		store := repository.NewYAMLStore(t.TempDir())
		save := application.NewSaveInventoryCommandHandler(inventoryRepo(cement, nails), store)
		require.NoError(t, save.H(ctx, application.SaveInventoryCommand{Name: "inventory"}))

		repo := inventoryRepo(cement)
		load := application.NewLoadInventoryRequestHandler(repo, store)

		res, err := load.H(ctx, application.LoadInventoryRequest{Name: "inventory"})
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
		assert.Equal(t, 1, res.Loaded)

		exists, _ := repo.Exists(ctx, nails.ID)
		assert.True(t, exists)
	})
}
