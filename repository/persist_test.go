package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/typedrepo/repository"
	"github.com/go-arrower/typedrepo/repository/testdata"
)

func TestDump(t *testing.T) {
	t.Parallel()

	t.Run("dump all items", func(t *testing.T) {
		t.Parallel()

		store := repository.NewJSONStore(t.TempDir())
		repo := repository.NewMemoryRepository[testdata.Item, testdata.ItemID]()
		_ = repo.Add(ctx, testdata.TestItem())
		_ = repo.Add(ctx, testdata.TestItem())

		err := repository.Dump[testdata.Item, testdata.ItemID](ctx, repo, store, "Item")
		assert.NoError(t, err)

		var loaded []testdata.Item
		err = store.Load("Item", &loaded)
		assert.NoError(t, err)

		all, _ := repo.GetAll(ctx)
		assert.Equal(t, all, loaded)
	})

	t.Run("store fails", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepository[testdata.Item, testdata.ItemID]()

		err := repository.Dump[testdata.Item, testdata.ItemID](ctx, repo, testStoreStoreFails(), "Item")
		assert.ErrorIs(t, err, errStoreFailed)
	})
}

func TestRestore(t *testing.T) {
	t.Parallel()

	t.Run("restore into a fresh repository", func(t *testing.T) {
		t.Parallel()

		store := repository.NewYAMLStore(t.TempDir())
		repo := repository.NewMemoryQuantityRepository[testdata.Item, testdata.ItemID]()
		for range 3 {
			_ = repo.Add(ctx, testdata.TestItem())
		}

		err := repository.Dump[testdata.Item, testdata.ItemID](ctx, repo, store, "Item")
		require.NoError(t, err)

		fresh := repository.Test[testdata.Item, testdata.ItemID](t)

		n, err := repository.Restore[testdata.Item, testdata.ItemID](ctx, fresh, store, "Item")
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
		fresh.Total(3)

		want, _ := repo.GetAll(ctx)
		got, _ := fresh.GetAll(ctx)
		assert.Equal(t, want, got, "insertion order is kept")
	})

	t.Run("restore over existing items", func(t *testing.T) {
		t.Parallel()

		store, err := repository.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		defer store.Close()

		existing := testdata.TestItem()

		repo := repository.NewMemoryRepository[testdata.Item, testdata.ItemID]()
		_ = repo.Add(ctx, existing)
		_ = repo.Add(ctx, testdata.TestItem())

		err = repository.Dump[testdata.Item, testdata.ItemID](ctx, repo, store, "Item")
		require.NoError(t, err)

		other := repository.Test[testdata.Item, testdata.ItemID](t)
		_ = other.Insert(ctx, existing)

		n, err := repository.Restore[testdata.Item, testdata.ItemID](ctx, other, store, "Item")
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
		assert.Equal(t, 1, n, "only the new item is restored")
		other.Total(2)
	})

	t.Run("nothing stored", func(t *testing.T) {
		t.Parallel()

		store := repository.NewJSONStore(t.TempDir())
		repo := repository.NewMemoryRepository[testdata.Item, testdata.ItemID]()

		n, err := repository.Restore[testdata.Item, testdata.ItemID](ctx, repo, store, "Item")
		assert.ErrorIs(t, err, repository.ErrLoad)
		assert.Zero(t, n)
	})

	t.Run("load fails", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepository[testdata.Item, testdata.ItemID]()

		n, err := repository.Restore[testdata.Item, testdata.ItemID](ctx, repo, testStoreLoadFails(), "Item")
		assert.ErrorIs(t, err, errStoreFailed)
		assert.Zero(t, n)
	})

	t.Run("noop store", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepository[testdata.Item, testdata.ItemID]()

		n, err := repository.Restore[testdata.Item, testdata.ItemID](ctx, repo, repository.NoopStore, "Item")
		assert.NoError(t, err)
		assert.Zero(t, n)
	})
}
