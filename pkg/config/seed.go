package config

import (
	"log/slog"

	"github.com/mockkit/mockkit/pkg/listeners"
	"github.com/mockkit/mockkit/pkg/logging"
	"github.com/mockkit/mockkit/pkg/mock"
)

// NewSettings returns mock settings seeded from the resolved config.
// The caller chains further customization on the returned settings.
func (c *Config) NewSettings() (*mock.Settings, error) {
	strictness, err := mock.ParseStrictness(c.Strictness)
	if err != nil {
		return nil, err
	}
	maker, err := mock.ParseMockMaker(c.MockMaker)
	if err != nil {
		return nil, err
	}

	settings := mock.NewSettings().
		WithStrictness(strictness).
		WithMockMaker(maker).
		WithLogger(c.NewLogger())
	if c.Serializable {
		settings.WithSerializable()
	}
	if c.VerboseLogging {
		settings.EnableVerboseLogging()
	}
	return settings, nil
}

// NewRecorder returns an invocation recorder sized from recorderCapacity.
func (c *Config) NewRecorder() *listeners.Recorder {
	return listeners.NewRecorder(c.RecorderCapacity)
}

// NewLogger builds a logger from the configured level and format.
func (c *Config) NewLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(c.LogLevel),
		Format: logging.ParseFormat(c.LogFormat),
	})
}
