package config

import (
	"fmt"
	"strings"

	"github.com/mockkit/mockkit/pkg/mock"
)

// Config holds the library-wide defaults applied to newly created mock
// settings. Values can come from multiple sources with the following
// precedence:
// 1. Caller overrides such as CLI flags (highest priority)
// 2. Environment variables
// 3. Local config file (.mockkitrc.yaml in current directory)
// 4. Global config file (~/.config/mockkit/config.yaml)
// 5. Default values (lowest priority)
type Config struct {
	// Mock behavior defaults
	Strictness   string `yaml:"strictness" json:"strictness"`
	MockMaker    string `yaml:"mockMaker" json:"mockMaker"`
	Serializable bool   `yaml:"serializable" json:"serializable"`

	// Invocation reporting
	VerboseLogging   bool `yaml:"verboseLogging" json:"verboseLogging"`
	RecorderCapacity int  `yaml:"recorderCapacity" json:"recorderCapacity"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which YAML keys were explicitly present in a
	// loaded file. Merge consults it to distinguish an explicit false
	// from an absent boolean.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Validate checks the resolved configuration values.
func (c *Config) Validate() error {
	if _, err := mock.ParseStrictness(c.Strictness); err != nil {
		return err
	}
	if _, err := mock.ParseMockMaker(c.MockMaker); err != nil {
		return err
	}
	if c.RecorderCapacity < 0 || c.RecorderCapacity > MaxRecorderCapacity {
		return fmt.Errorf("recorderCapacity %d is out of range (0-%d)", c.RecorderCapacity, MaxRecorderCapacity)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat)
	}
	return nil
}
