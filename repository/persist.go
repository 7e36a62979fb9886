package repository

import (
	"context"
	"errors"
	"fmt"
)

// Dump writes a snapshot of all items of repo into store under name.
func Dump[E Entity[ID], ID id](ctx context.Context, repo Repository[E, ID], store Store, name string) error {
	all, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("could not dump %s: %w", name, err)
	}

	if err := store.Store(name, all); err != nil {
		return fmt.Errorf("could not dump %s: %w", name, err)
	}

	return nil
}

// Restore loads the items stored under name and inserts them into repo one by one.
// Items that cannot be inserted, e.g. because repo already contains their id,
// are skipped and reported together in the returned error; all other items are inserted.
// It returns the number of inserted items.
func Restore[E Entity[ID], ID id](ctx context.Context, repo Repository[E, ID], store Store, name string) (int, error) {
	var items []E

	if err := store.Load(name, &items); err != nil {
		return 0, fmt.Errorf("could not restore %s: %w", name, err)
	}

	var (
		restored int
		errs     []error
	)

	for _, item := range items {
		if err := repo.Insert(ctx, item); err != nil {
			errs = append(errs, err)
			continue
		}

		restored++
	}

	if len(errs) > 0 {
		return restored, fmt.Errorf("could not restore all of %s: %w", name, errors.Join(errs...))
	}

	return restored, nil
}
