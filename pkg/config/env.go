package config

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvStrictness       = "MOCKKIT_STRICTNESS"
	EnvMockMaker        = "MOCKKIT_MOCK_MAKER"
	EnvSerializable     = "MOCKKIT_SERIALIZABLE"
	EnvVerboseLogging   = "MOCKKIT_VERBOSE_LOGGING"
	EnvRecorderCapacity = "MOCKKIT_RECORDER_CAPACITY"
	EnvLogLevel         = "MOCKKIT_LOG_LEVEL"
	EnvLogFormat        = "MOCKKIT_LOG_FORMAT"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	// MOCKKIT_STRICTNESS
	if v := os.Getenv(EnvStrictness); v != "" {
		cfg.Strictness = v
		cfg.Sources["strictness"] = SourceEnv
	}

	// MOCKKIT_MOCK_MAKER
	if v := os.Getenv(EnvMockMaker); v != "" {
		cfg.MockMaker = v
		cfg.Sources["mockMaker"] = SourceEnv
	}

	// MOCKKIT_SERIALIZABLE
	if v := os.Getenv(EnvSerializable); v != "" {
		cfg.Serializable = v == "true" || v == "1" || v == "yes"
		cfg.Sources["serializable"] = SourceEnv
	}

	// MOCKKIT_VERBOSE_LOGGING
	if v := os.Getenv(EnvVerboseLogging); v != "" {
		cfg.VerboseLogging = v == "true" || v == "1" || v == "yes"
		cfg.Sources["verboseLogging"] = SourceEnv
	}

	// MOCKKIT_RECORDER_CAPACITY
	if v := os.Getenv(EnvRecorderCapacity); v != "" {
		if capacity, err := strconv.Atoi(v); err == nil {
			cfg.RecorderCapacity = capacity
			cfg.Sources["recorderCapacity"] = SourceEnv
		}
	}

	// MOCKKIT_LOG_LEVEL
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}

	// MOCKKIT_LOG_FORMAT
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}
