// Package config loads and resolves library-wide defaults for mockkit.
//
// Configuration is merged from several sources. Later sources win:
//
//  1. Built-in defaults
//  2. Global config file (~/.config/mockkit/config.yaml)
//  3. Local config file (.mockkitrc.yaml in the current directory)
//  4. Environment variables (MOCKKIT_*)
//  5. Explicit overrides merged by the caller (for example CLI flags)
//
// Every resolved value remembers its origin in Config.Sources, keyed by
// the field's YAML name, so tooling can report where a value came from.
//
// Config files are plain YAML. ValidateBytes checks a document against
// the embedded JSON Schema, and Config.Validate checks the resolved
// values themselves.
package config
