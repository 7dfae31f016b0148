package config

// DefaultStrictness is the stubbing strictness applied when none is configured.
const DefaultStrictness = "default"

// DefaultMockMaker is the strategy used to construct mock instances.
const DefaultMockMaker = "reflect"

// DefaultRecorderCapacity is the default maximum recorded invocations.
const DefaultRecorderCapacity = 1000

// MaxRecorderCapacity bounds recorderCapacity to keep memory predictable.
const MaxRecorderCapacity = 1000000

// DefaultLogLevel is the default minimum log level.
const DefaultLogLevel = "info"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Strictness:       DefaultStrictness,
		MockMaker:        DefaultMockMaker,
		RecorderCapacity: DefaultRecorderCapacity,
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
		Sources:          make(map[string]string),
	}

	// Mark all as default source
	cfg.Sources["strictness"] = SourceDefault
	cfg.Sources["mockMaker"] = SourceDefault
	cfg.Sources["serializable"] = SourceDefault
	cfg.Sources["verboseLogging"] = SourceDefault
	cfg.Sources["recorderCapacity"] = SourceDefault
	cfg.Sources["logLevel"] = SourceDefault
	cfg.Sources["logFormat"] = SourceDefault

	return cfg
}
