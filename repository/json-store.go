package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

var _ Store = (*JSONStore)(nil)

// JSONStore is a naive implementation of a Store.
// It persists the data as a human-readable JSON file on disc.
// JSONStore is not schema aware and uses the standard go marshalling.
// CAUTION: Be aware if you change your structs, this can lead to data loss!
type JSONStore struct {
	dir string

	mu sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		panic("could not create path: " + path + ": " + err.Error())
	}

	return &JSONStore{dir: path, mu: sync.Mutex{}}
}

func (s *JSONStore) Store(name string, data any) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	file, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	defer file.Close()

	_, err = io.Copy(file, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	return nil
}

func (s *JSONStore) Load(name string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path(name))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	return nil
}

func (s *JSONStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
