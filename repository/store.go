package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

var (
	ErrStore = errors.New("could not store repository data")
	ErrLoad  = errors.New("could not load repository data")

	errUnknownFormat = errors.New("unknown store format")
)

// Store is an interface to access the data of a repository as a whole,
// so it can be persisted easily.
// The name identifies the data set; stores add their own file extension.
type Store interface {
	Store(name string, data any) error
	Load(name string, data any) error
}

var NoopStore Store = &noopStore{} //nolint:gochecknoglobals // pattern from std lib slog.DiscardHandler

type noopStore struct{}

func (n noopStore) Store(_ string, _ any) error {
	return nil
}

func (n noopStore) Load(_ string, _ any) error {
	return nil
}

// Format names a Store implementation.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Formats is the list of all supported store formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatSQLite}
}

// sqliteFileName is the database file NewStore uses inside dir.
const sqliteFileName = "typedrepo.db"

// NewStore returns the Store for format, keeping its files inside dir.
// Close the returned Store if it implements io.Closer.
func NewStore(format Format, dir string) (Store, error) { //nolint:ireturn // the format decides the implementation
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: could not create dir %s: %v", ErrStore, dir, err)
	}

	switch format {
	case FormatJSON:
		return NewJSONStore(dir), nil
	case FormatYAML:
		return NewYAMLStore(dir), nil
	case FormatSQLite:
		store, err := NewSQLiteStore(filepath.Join(dir, sqliteFileName))
		if err != nil {
			return nil, err
		}

		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// DefaultName returns the name of E's type, to be used as the name of its data set.
func DefaultName[E any]() string {
	return reflect.TypeOf(new(E)).Elem().Name()
}
