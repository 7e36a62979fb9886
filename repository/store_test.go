package repository_test

import (
	"io"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/typedrepo/repository"
	"github.com/go-arrower/typedrepo/repository/testdata"
)

func TestStores(t *testing.T) {
	t.Parallel()

	stores := map[string]func(t *testing.T) repository.Store{
		"json": func(t *testing.T) repository.Store {
			t.Helper()
			return repository.NewJSONStore(t.TempDir())
		},
		"yaml": func(t *testing.T) repository.Store {
			t.Helper()
			return repository.NewYAMLStore(t.TempDir())
		},
		"sqlite": func(t *testing.T) repository.Store {
			t.Helper()

			s, err := repository.NewSQLiteStore(":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })

			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("store and load", func(t *testing.T) {
				t.Parallel()

				store := newStore(t)
				items := []testdata.Item{testdata.TestItem(), testdata.TestItem()}

				err := store.Store("Item", items)
				assert.NoError(t, err)

				var loaded []testdata.Item
				err = store.Load("Item", &loaded)
				assert.NoError(t, err)
				assert.Equal(t, items, loaded)
			})

			t.Run("overwrite", func(t *testing.T) {
				t.Parallel()

				store := newStore(t)

				_ = store.Store("Item", []testdata.Item{testdata.TestItem()})
				err := store.Store("Item", []testdata.Item{})
				assert.NoError(t, err)

				var loaded []testdata.Item
				err = store.Load("Item", &loaded)
				assert.NoError(t, err)
				assert.Empty(t, loaded)
			})

			t.Run("names are separate", func(t *testing.T) {
				t.Parallel()

				store := newStore(t)

				_ = store.Store("Item", []testdata.Item{testdata.TestItem()})
				_ = store.Store("Note", []testdata.Note{testdata.TestNote(), testdata.TestNote()})

				var items []testdata.Item
				_ = store.Load("Item", &items)
				assert.Len(t, items, 1)

				var notes []testdata.Note
				_ = store.Load("Note", &notes)
				assert.Len(t, notes, 2)
			})

			t.Run("load missing", func(t *testing.T) {
				t.Parallel()

				store := newStore(t)

				var loaded []testdata.Item
				err := store.Load("Item", &loaded)
				assert.ErrorIs(t, err, repository.ErrLoad)
				assert.ErrorIs(t, err, fs.ErrNotExist)
			})

			t.Run("nil data is ignored", func(t *testing.T) {
				t.Parallel()

				store := newStore(t)

				err := store.Store("Item", nil)
				assert.NoError(t, err)
			})
		})
	}
}

func TestJSONStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := repository.NewJSONStore(dir)

	t.Run("file name", func(t *testing.T) {
		t.Parallel()

		err := store.Store("Item", []testdata.Item{testdata.TestItem()})
		assert.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "Item.json"))
	})

	t.Run("parallel", func(t *testing.T) {
		t.Parallel()

		wg := sync.WaitGroup{}

		const routines = 15
		wg.Add(routines)

		for range routines {
			go func() {
				err := store.Store("Parallel", []testdata.Item{testdata.TestItem()})
				assert.NoError(t, err)

				wg.Done()
			}()
		}

		wg.Wait()

		assert.FileExists(t, filepath.Join(dir, "Parallel.json"))
	})
}

func TestYAMLStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := repository.NewYAMLStore(dir)

	err := store.Store("Item", []testdata.Item{testdata.TestItem()})
	assert.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Item.yaml"))
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	t.Run("all formats", func(t *testing.T) {
		t.Parallel()

		for _, format := range repository.Formats() {
			store, err := repository.NewStore(format, t.TempDir())
			assert.NoError(t, err)
			assert.NotNil(t, store)

			if c, ok := store.(io.Closer); ok {
				assert.NoError(t, c.Close())
			}
		}
	})

	t.Run("sqlite file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		store, err := repository.NewStore(repository.FormatSQLite, dir)
		require.NoError(t, err)
		defer store.(io.Closer).Close()

		assert.FileExists(t, filepath.Join(dir, "typedrepo.db"))
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		store, err := repository.NewStore("xml", t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("creates the dir", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "data")

		_, err := repository.NewStore(repository.FormatJSON, dir)
		assert.NoError(t, err)
		assert.DirExists(t, dir)
	})
}

func TestNoopStore(t *testing.T) {
	t.Parallel()

	assert.NoError(t, repository.NoopStore.Store("Item", []testdata.Item{}))
	assert.NoError(t, repository.NoopStore.Load("Item", &[]testdata.Item{}))
}
