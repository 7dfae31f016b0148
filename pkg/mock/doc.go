// Package mock provides the Settings builder that accumulates and
// validates the configuration of a mock object before it is created.
//
// A Settings collects everything that shapes a mock: its name, the
// extra interfaces it implements, serializability, stubbing hygiene
// level, default answer and the listeners observing it. Build turns
// the accumulated configuration into an immutable CreationSettings
// that a mock maker consumes.
//
// # Usage
//
// Configure and build settings for a mock of a Repository interface
// that also implements io.Closer:
//
//	closer := reflect.TypeOf((*io.Closer)(nil)).Elem()
//	repo := reflect.TypeOf((*Repository)(nil)).Elem()
//
//	creation, err := mock.NewSettings().
//	    WithName("userRepository").
//	    WithExtraInterfaces(closer).
//	    WithSerializable().
//	    EnableVerboseLogging().
//	    Build(repo)
//
// # Validation
//
// Settings validates eagerly. Every mutating method checks its
// arguments before touching any state and panics with an
// *InvalidConfigurationError when they are unusable:
//
//	mock.NewSettings().AddInvocationListeners() // panics: requires at least one listener
//
// A failed call never leaves the settings partially modified: either
// all given values are accepted or none are. Build performs the final
// cross-field checks, such as rejecting an extra interface equal to
// the mocked type, and returns an error rather than panicking.
//
// # Listeners
//
// Three listener kinds from the listeners package can be registered:
// invocation listeners, stubbing lookup listeners and verification
// started listeners. Registration order is preserved and duplicates
// are allowed. The one exception is EnableVerboseLogging, which keeps
// at most one verbose logger registered no matter how often it is
// called.
//
// # Concurrency
//
// A Settings is a single-goroutine builder. The CreationSettings
// returned by Build is an immutable snapshot and safe to share across
// goroutines.
package mock
