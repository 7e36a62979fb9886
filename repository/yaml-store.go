package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var _ Store = (*YAMLStore)(nil)

// YAMLStore persists the data as a YAML file on disc, one file per name.
// Like JSONStore it is not schema aware.
type YAMLStore struct {
	dir string

	mu sync.Mutex
}

func NewYAMLStore(path string) *YAMLStore {
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		panic("could not create path: " + path + ": " + err.Error())
	}

	return &YAMLStore{dir: path, mu: sync.Mutex{}}
}

func (s *YAMLStore) Store(name string, data any) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	defer file.Close()

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	return nil
}

func (s *YAMLStore) Load(name string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path(name))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(data); err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	return nil
}

func (s *YAMLStore) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}
