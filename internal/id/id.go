// Package id provides identifier and default-name generation utilities.
// This is the canonical source for ID generation across the codebase.
package id

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID() string {
	return uuid.NewString()
}

// InstanceName derives the default mock name for a type. The type's
// name is returned with its leading rune lowercased, so io.Closer
// becomes "closer" and a Repository interface becomes "repository".
// Unnamed types (anonymous interfaces, slices, maps) have no usable
// name and fall back to "mock".
func InstanceName(t reflect.Type) string {
	if t == nil {
		return "mock"
	}
	name := t.Name()
	if name == "" {
		return "mock"
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "mock"
	}
	return string(unicode.ToLower(r)) + name[size:]
}
