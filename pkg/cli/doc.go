// Package cli provides the command-line interface for mockkit.
//
// The cli package implements the commands for inspecting and validating
// mockkit's layered default configuration:
//   - init: Create a configuration file, interactively or from flags
//   - config: Display effective configuration with per-field sources
//   - validate: Validate a configuration file against the schema
//   - version: Show mockkit version
//
// Configuration is resolved from defaults, the global config file
// (~/.config/mockkit/config.yaml), the local .mockkitrc.yaml, MOCKKIT_*
// environment variables, and finally command-line flags.
//
// Usage:
//
//	mockkit init --strictness warn
//	mockkit config
//	mockkit config --json
//	mockkit validate .mockkitrc.yaml
//	mockkit version
package cli
