package repository

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/typedrepo/repository/testdata"
)

// TestSuite runs the contract every QuantityRepository implementation has to fulfil.
// Run it from the tests of your implementation.
func TestSuite(
	t *testing.T,
	newItemRepo func(opts ...Option) QuantityRepository[testdata.Item, testdata.ItemID],
	newNoteRepo func(opts ...Option) Repository[testdata.Note, uint],
) { //nolint:tparallel // t.Parallel can only be called ones! The caller decides
	t.Helper()

	if newItemRepo == nil {
		t.Fatal("item constructor is nil")
	}

	if newNoteRepo == nil {
		t.Fatal("note constructor is nil")
	}

	ctx := context.Background()

	t.Run("new", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()
		assert.NotNil(t, repo)

		c, err := repo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, c, "new repository should be empty")
	})

	t.Run("Insert", func(t *testing.T) {
		t.Parallel()

		t.Run("insert", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.TestItem()

			err := repo.Insert(ctx, item)
			assert.NoError(t, err)

			got, err := repo.GetByID(ctx, item.ID)
			assert.NoError(t, err)
			assert.Equal(t, item, got)
		})

		t.Run("insert same id again", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.TestItem()

			err := repo.Insert(ctx, item)
			assert.NoError(t, err)

			other := testdata.TestItem()
			other.ID = item.ID

			err = repo.Insert(ctx, other)
			assert.ErrorIs(t, err, ErrAlreadyExists)

			got, _ := repo.GetByID(ctx, item.ID)
			assert.Equal(t, item, got, "first item should stay unchanged")

			c, _ := repo.Count(ctx)
			assert.Equal(t, 1, c)
		})

		t.Run("zero id", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.Insert(ctx, testdata.Item{ID: 0, Name: gofakeit.Name()})
			assert.NoError(t, err)
		})

		t.Run("negative id", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.Insert(ctx, testdata.Item{ID: -1})
			assert.ErrorIs(t, err, ErrInvalidValue)

			c, _ := repo.Count(ctx)
			assert.Equal(t, 0, c)
		})

		t.Run("add", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.Add(ctx, testdata.DefaultItem)
			assert.NoError(t, err)

			err = repo.Add(ctx, testdata.DefaultItem)
			assert.ErrorIs(t, err, ErrAlreadyExists)
		})

		t.Run("unsigned id", func(t *testing.T) {
			t.Parallel()

			repo := newNoteRepo()
			note := testdata.TestNote()

			err := repo.Insert(ctx, note)
			assert.NoError(t, err)

			got, err := repo.GetByID(ctx, note.ID)
			assert.NoError(t, err)
			assert.Equal(t, note, got)
		})
	})

	t.Run("GetByID", func(t *testing.T) {
		t.Parallel()

		t.Run("never inserted", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			e, err := repo.GetByID(ctx, testdata.TestItem().ID)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Empty(t, e)
		})

		t.Run("already removed", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.TestItem()
			repo.Insert(ctx, item)
			repo.Remove(ctx, item.ID)

			_, err := repo.GetByID(ctx, item.ID)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Parallel()

		t.Run("update", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.TestItem()
			repo.Insert(ctx, item)

			item.Name = gofakeit.Name()
			err := repo.Update(ctx, item)
			assert.NoError(t, err)

			got, err := repo.GetByID(ctx, item.ID)
			assert.NoError(t, err)
			assert.Equal(t, item, got)
		})

		t.Run("does not exist yet", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.Update(ctx, testdata.TestItem())
			assert.ErrorIs(t, err, ErrNotFound)

			c, _ := repo.Count(ctx)
			assert.Equal(t, 0, c)
		})

		t.Run("keeps position", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			first, second := testdata.TestItem(), testdata.TestItem()
			repo.Insert(ctx, first)
			repo.Insert(ctx, second)

			first.Name = gofakeit.Name()
			repo.Update(ctx, first)

			all, _ := repo.GetAll(ctx)
			assert.Equal(t, []testdata.Item{first, second}, all)
		})

		t.Run("negative quantity", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.Item{ID: testdata.TestItem().ID, Name: gofakeit.Name(), Quantity: 10}
			repo.Insert(ctx, item)

			err := repo.Update(ctx, item.WithQuantity(-1))
			assert.ErrorIs(t, err, ErrInvalidValue)

			got, _ := repo.GetByID(ctx, item.ID)
			assert.Equal(t, item, got, "failed update should not change the item")
		})

		t.Run("negative quantity of missing id", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.Update(ctx, testdata.TestItem().WithQuantity(-1))
			assert.ErrorIs(t, err, ErrInvalidValue, "quantity is validated first")

			c, _ := repo.Count(ctx)
			assert.Zero(t, c)
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Parallel()

		t.Run("remove", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			repo.Insert(ctx, testdata.DefaultItem)

			err := repo.Remove(ctx, testdata.DefaultItem.ID)
			assert.NoError(t, err)

			ex, _ := repo.Exists(ctx, testdata.DefaultItem.ID)
			assert.False(t, ex)
		})

		t.Run("remove twice", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			repo.Insert(ctx, testdata.DefaultItem)

			err := repo.Remove(ctx, testdata.DefaultItem.ID)
			assert.NoError(t, err)

			err = repo.Remove(ctx, testdata.DefaultItem.ID)
			assert.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("never inserted", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			repo.Insert(ctx, testdata.TestItem())

			err := repo.Remove(ctx, testdata.TestItem().ID)
			assert.ErrorIs(t, err, ErrNotFound)

			c, _ := repo.Count(ctx)
			assert.Equal(t, 1, c, "failed remove should not change the repository")
		})

		t.Run("scenario: remove the middle item", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			for _, id := range []testdata.ItemID{1, 2, 3} {
				err := repo.Insert(ctx, testdata.Item{ID: id, Name: gofakeit.Name(), Quantity: 1})
				assert.NoError(t, err)
			}

			err := repo.Remove(ctx, 2)
			assert.NoError(t, err)

			all, _ := repo.GetAll(ctx)
			ids := []testdata.ItemID{}
			for _, e := range all {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, []testdata.ItemID{1, 3}, ids)

			_, err = repo.GetByID(ctx, 2)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	})

	t.Run("RemoveBy", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()
		item := testdata.TestItem()
		repo.Insert(ctx, testdata.TestItem())
		repo.Insert(ctx, item)

		err := repo.RemoveBy(ctx, func(e testdata.Item) bool { return e.Name == item.Name })
		assert.NoError(t, err)

		ex, _ := repo.Exists(ctx, item.ID)
		assert.False(t, ex)

		err = repo.RemoveBy(ctx, func(e testdata.Item) bool { return e.Name == item.Name })
		assert.ErrorIs(t, err, ErrNotFound)

		c, _ := repo.Count(ctx)
		assert.Equal(t, 1, c)
	})

	t.Run("UpdateQuantity", func(t *testing.T) {
		t.Parallel()

		t.Run("scenario: update and reject negative", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			repo.Insert(ctx, testdata.Item{ID: 1, Name: gofakeit.Name(), Quantity: 10})

			err := repo.UpdateQuantity(ctx, 1, 15)
			assert.NoError(t, err)

			got, _ := repo.GetByID(ctx, 1)
			assert.Equal(t, 15, got.Quantity)

			err = repo.UpdateQuantity(ctx, 1, -1)
			assert.ErrorIs(t, err, ErrInvalidValue)

			got, _ = repo.GetByID(ctx, 1)
			assert.Equal(t, 15, got.Quantity, "failed update should not change the quantity")
		})

		t.Run("zero", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.TestItem()
			repo.Insert(ctx, item)

			err := repo.UpdateQuantity(ctx, item.ID, 0)
			assert.NoError(t, err)

			got, _ := repo.GetByID(ctx, item.ID)
			assert.Equal(t, 0, got.Quantity)
			assert.Equal(t, item.Name, got.Name, "other fields should stay unchanged")
		})

		t.Run("not found", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.UpdateQuantity(ctx, testdata.TestItem().ID, 5)
			assert.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("negative quantity of missing id", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			err := repo.UpdateQuantity(ctx, testdata.TestItem().ID, -5)
			assert.ErrorIs(t, err, ErrInvalidValue, "quantity is validated first")
		})
	})

	t.Run("GetAll", func(t *testing.T) {
		t.Parallel()

		t.Run("insertion order", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()

			all, err := repo.GetAll(ctx)
			assert.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all, "new repository should be empty")

			items := []testdata.Item{
				{ID: 30, Name: gofakeit.Name()},
				{ID: 10, Name: gofakeit.Name()},
				{ID: 20, Name: gofakeit.Name()},
			}
			for _, item := range items {
				repo.Insert(ctx, item)
			}

			all, err = repo.GetAll(ctx)
			assert.NoError(t, err)
			assert.Equal(t, items, all)
		})

		t.Run("snapshot", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			item := testdata.TestItem()
			repo.Insert(ctx, item)

			all, _ := repo.GetAll(ctx)
			all[0].Quantity = -100
			all[0].Name = "changed"
			all = append(all, testdata.TestItem())

			got, _ := repo.GetByID(ctx, item.ID)
			assert.Equal(t, item, got, "changing the snapshot should not change the repository")

			c, _ := repo.Count(ctx)
			assert.Equal(t, 1, c)
			assert.Len(t, all, 2)
		})

		t.Run("length follows inserts and removes", func(t *testing.T) {
			t.Parallel()

			repo := newItemRepo()
			present := map[testdata.ItemID]bool{}

			const ops = 200
			for range ops {
				id := testdata.ItemID(gofakeit.Number(0, 20)) //nolint:mnd

				if gofakeit.Bool() {
					err := repo.Insert(ctx, testdata.Item{ID: id})
					if err == nil {
						present[id] = true
					}

					continue
				}

				err := repo.Remove(ctx, id)
				if err == nil {
					delete(present, id)
				}
			}

			all, _ := repo.GetAll(ctx)
			assert.Len(t, all, len(present))

			c, _ := repo.Count(ctx)
			assert.Equal(t, len(present), c)
		})
	})

	t.Run("FindBy", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()
		first := testdata.Item{ID: 1, Name: "first", Quantity: 5}
		second := testdata.Item{ID: 2, Name: "second", Quantity: 5}
		repo.Insert(ctx, first)
		repo.Insert(ctx, second)

		got, err := repo.FindBy(ctx, func(e testdata.Item) bool { return e.Quantity == 5 })
		assert.NoError(t, err)
		assert.Equal(t, first, got, "should return the first match")

		got, err = repo.FindBy(ctx, func(e testdata.Item) bool { return e.Quantity > 100 })
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, got)
	})

	t.Run("FindAll", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()
		repo.Insert(ctx, testdata.Item{ID: 1, Quantity: 1})
		repo.Insert(ctx, testdata.Item{ID: 2, Quantity: 2})
		repo.Insert(ctx, testdata.Item{ID: 3, Quantity: 3})

		got, err := repo.FindAll(ctx, func(e testdata.Item) bool { return e.Quantity != 2 })
		assert.NoError(t, err)
		assert.Equal(t, []testdata.Item{{ID: 1, Quantity: 1}, {ID: 3, Quantity: 3}}, got)

		got, err = repo.FindAll(ctx, func(_ testdata.Item) bool { return false })
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Exists", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()

		ex, err := repo.Exists(ctx, testdata.DefaultItem.ID)
		assert.NoError(t, err)
		assert.False(t, ex, "id should not exist")

		repo.Insert(ctx, testdata.DefaultItem)

		ex, err = repo.Exists(ctx, testdata.DefaultItem.ID)
		assert.NoError(t, err)
		assert.True(t, ex, "id should exist")
	})

	t.Run("Clear", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()
		repo.Insert(ctx, testdata.TestItem())
		repo.Insert(ctx, testdata.TestItem())

		err := repo.Clear(ctx)
		assert.NoError(t, err)

		all, _ := repo.GetAll(ctx)
		assert.Empty(t, all)

		err = repo.Insert(ctx, testdata.DefaultItem)
		assert.NoError(t, err, "cleared repository should be usable")
	})

	t.Run("usable after failures", func(t *testing.T) {
		t.Parallel()

		repo := newItemRepo()
		item := testdata.TestItem()

		assert.Error(t, repo.Remove(ctx, item.ID))
		assert.Error(t, repo.UpdateQuantity(ctx, item.ID, 1))
		assert.Error(t, repo.Insert(ctx, testdata.Item{ID: -3}))

		assert.NoError(t, repo.Insert(ctx, item))
		assert.Error(t, repo.Insert(ctx, item))
		assert.NoError(t, repo.UpdateQuantity(ctx, item.ID, item.Quantity+1))

		got, err := repo.GetByID(ctx, item.ID)
		assert.NoError(t, err)
		assert.Equal(t, item.Quantity+1, got.Quantity)
	})
}

// Test returns a MemoryQuantityRepository tuned for unit testing.
// It exposes a lot of repository-specific assertions for the use in tests.
func Test[E Quantified[E, ID], ID id](t *testing.T, opts ...Option) *TestRepository[E, ID] {
	if t == nil {
		panic("t is nil")
	}

	repo := NewMemoryQuantityRepository[E, ID](opts...)

	return &TestRepository[E, ID]{
		MemoryQuantityRepository: repo,
		TestAssertions:           TestAssert[E, ID](t, repo),
	}
}

// TestRepository is a special repository for unit testing.
// It exposes all methods of MemoryQuantityRepository and can be injected as a dependency
// in any application.
// Additionally, TestRepository exposes a set of assertions TestAssertions
// on all the items stored in the repository.
type TestRepository[E Quantified[E, ID], ID id] struct {
	*MemoryQuantityRepository[E, ID]
	*TestAssertions[E, ID]
}

// TestAssert returns assertions for any Repository.
func TestAssert[E Entity[ID], ID id](t *testing.T, repo Repository[E, ID]) *TestAssertions[E, ID] {
	if t == nil {
		panic("t is nil")
	}

	return &TestAssertions[E, ID]{repo: repo, t: t}
}

// TestAssertions are assertions that work on a Repository, to make
// testing easier and convenient.
// The interface follows stretchr/testify as close as possible.
//
//   - Every assert func returns a bool indicating whether the assertion was successful or not,
//     this is useful for if you want to go on making further assertions under certain conditions.
type TestAssertions[E Entity[ID], ID id] struct {
	repo Repository[E, ID]
	t    *testing.T
}

// Empty asserts that the repository has no items.
func (a *TestAssertions[E, ID]) Empty(msgAndArgs ...any) bool {
	a.t.Helper()

	c, _ := a.repo.Count(context.Background())

	return assert.Equal(a.t, 0, c, msgAndArgs...)
}

// NotEmpty asserts that the repository has at least one item.
func (a *TestAssertions[E, ID]) NotEmpty(msgAndArgs ...any) bool {
	a.t.Helper()

	c, _ := a.repo.Count(context.Background())
	if c == 0 {
		return assert.Fail(a.t, "repository is empty, should not be", msgAndArgs...)
	}

	return true
}

// Total asserts that the repository has exactly total items.
func (a *TestAssertions[E, ID]) Total(total int, msgAndArgs ...any) bool {
	a.t.Helper()

	c, _ := a.repo.Count(context.Background())

	return assert.Equal(a.t, total, c, msgAndArgs...)
}

// Contains asserts that the repository has an item with the given id.
func (a *TestAssertions[E, ID]) Contains(id ID, msgAndArgs ...any) bool {
	a.t.Helper()

	ex, _ := a.repo.Exists(context.Background(), id)
	if !ex {
		return assert.Fail(a.t, "repository does not contain the id", msgAndArgs...)
	}

	return true
}
