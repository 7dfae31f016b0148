package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// configSchema compiles the embedded JSON Schema on first use.
func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("config.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("config.schema.json")
	})
	return compiledSchema, schemaErr
}

// SchemaError represents a single config validation error.
type SchemaError struct {
	// Path is the config path, e.g., "recorderCapacity". Empty for
	// document-level errors.
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (e SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// SchemaResult contains all validation errors for a config document.
type SchemaResult struct {
	Errors []SchemaError
}

// IsValid returns true if there are no validation errors.
func (r *SchemaResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error message.
func (r *SchemaResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// AddError adds a validation error.
func (r *SchemaResult) AddError(path, message string) {
	r.Errors = append(r.Errors, SchemaError{Path: path, Message: message})
}

// ValidateBytes validates a YAML config document against the embedded
// JSON Schema.
func ValidateBytes(data []byte) *SchemaResult {
	result := &SchemaResult{}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		result.AddError("", fmt.Sprintf("invalid YAML: %v", err))
		return result
	}
	if doc == nil {
		// An empty document is a valid config with all defaults.
		return result
	}

	// Convert to JSON and back to ensure consistent types
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		result.AddError("", fmt.Sprintf("failed to normalize document: %v", err))
		return result
	}
	var normalized interface{}
	if err := json.Unmarshal(jsonBytes, &normalized); err != nil {
		result.AddError("", fmt.Sprintf("failed to normalize document: %v", err))
		return result
	}

	schema, err := configSchema()
	if err != nil {
		result.AddError("", fmt.Sprintf("schema compilation error: %v", err))
		return result
	}

	if err := schema.Validate(normalized); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			collectSchemaErrors(validationErr, result)
		} else {
			result.AddError("", err.Error())
		}
	}

	return result
}

// ValidateConfigFile validates a config file on disk against the embedded
// JSON Schema. The returned error reports problems reading the file, not
// validation failures.
func ValidateConfigFile(path string) (*SchemaResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ValidateBytes(data), nil
}

// collectSchemaErrors extracts detailed errors from JSON Schema validation.
func collectSchemaErrors(err *jsonschema.ValidationError, result *SchemaResult) {
	if len(err.Causes) == 0 {
		result.AddError(fieldFromPointer(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, result)
	}
}

// fieldFromPointer converts a JSON Pointer path to dot notation.
func fieldFromPointer(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "/", ".")
}
