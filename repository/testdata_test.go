package repository_test

import (
	"context"
	"errors"
)

var errStoreFailed = errors.New("store failed")

var ctx = context.Background()

type testStore struct {
	load  func(name string, data any) error
	store func(name string, data any) error
}

func (s testStore) Load(name string, data any) error {
	return s.load(name, data)
}

func (s testStore) Store(name string, data any) error {
	return s.store(name, data)
}

func testStoreLoadFails() testStore {
	return testStore{
		load: func(_ string, _ any) error {
			return errStoreFailed
		},
		store: func(_ string, _ any) error {
			return nil
		},
	}
}

func testStoreStoreFails() testStore {
	return testStore{
		load: func(_ string, _ any) error {
			return nil
		},
		store: func(_ string, _ any) error {
			return errStoreFailed
		},
	}
}
