package aassert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NumFields asserts that the struct object has expected exported fields.
// Exported fields of nested structs count as well, also when
// they are the element of a pointer, slice, or map.
// An embedded struct counts with its promoted fields only.
//
// Use it for structs that are written to a store: a changed count means
// data saved by an earlier version might no longer load as expected.
func NumFields(t *testing.T, expected int, object any, msgAndArgs ...any) bool {
	t.Helper()

	typ := reflect.TypeOf(object)
	if typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ == nil || typ.Kind() != reflect.Struct {
		return assert.Fail(t, fmt.Sprintf("invalid argument %T, it has to be a struct", object), msgAndArgs...)
	}

	if n := numFields(typ, map[reflect.Type]bool{}); n != expected {
		t.Logf("the exported fields of %s changed: check that its stored data can still be loaded, "+
			"then correct the expected count in %s", typ, t.Name())

		return assert.Fail(t, fmt.Sprintf("struct changed, it has: %d fields, expected: %d", n, expected), msgAndArgs...)
	}

	return true
}

// numFields counts the exported fields of typ.
// path holds the struct types being counted, so a type referring to itself is not descended into again.
func numFields(typ reflect.Type, path map[reflect.Type]bool) int {
	if path[typ] {
		return 0
	}

	path[typ] = true
	defer delete(path, typ)

	n := 0

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous {
			elem := field.Type
			if elem.Kind() == reflect.Pointer {
				elem = elem.Elem()
			}

			if elem.Kind() == reflect.Struct {
				n += numFields(elem, path) // promoted fields
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		n++

		elem := field.Type
		for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Slice ||
			elem.Kind() == reflect.Array || elem.Kind() == reflect.Map {
			elem = elem.Elem()
		}

		if elem.Kind() == reflect.Struct {
			n += numFields(elem, path)
		}
	}

	return n
}
