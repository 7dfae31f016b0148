// Package id provides identifier and default-name generation utilities.
//
// This is the canonical source for ID generation across the mockkit
// codebase. Mock identifiers are UUID v4 strings generated through
// github.com/google/uuid, which itself draws from crypto/rand.
//
// The package also derives default mock names from Go types: a mock
// created for io.Closer without an explicit name is called "closer",
// following the convention of lowercasing the leading rune of the
// type's name. Anonymous interface types fall back to "mock".
package id
