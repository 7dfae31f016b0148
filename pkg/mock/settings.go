package mock

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/mockkit/mockkit/pkg/listeners"
)

// Settings accumulates the configuration of a mock object before it is
// created. Create one with NewSettings, chain the With* and Add*
// methods, then call Build with the interface the mock implements.
//
// Every mutating method validates its arguments immediately and panics
// with an *InvalidConfigurationError when they are unusable. A failed
// call never leaves the settings partially modified. The panic-based
// contract keeps configuration mistakes at the line that made them
// rather than at some later use of the mock.
//
// Settings is not safe for concurrent use; configure a mock from a
// single goroutine. The CreationSettings produced by Build is immutable
// and safe to share.
type Settings struct {
	name            string
	extraInterfaces []reflect.Type
	serializable    bool
	stubOnly        bool
	strictness      Strictness
	defaultAnswer   Answer
	mockMaker       MockMaker
	logger          *slog.Logger

	invocationListeners          []listeners.InvocationListener
	stubbingLookupListeners      []listeners.StubbingLookupListener
	verificationStartedListeners []listeners.VerificationStartedListener
}

// NewSettings creates an empty settings object ready for fluent
// configuration.
func NewSettings() *Settings {
	return &Settings{}
}

// WithName sets the name of the mock, used in logs, recorded
// invocations and error messages. An empty name is replaced at build
// time with a name derived from the mocked interface.
func (s *Settings) WithName(name string) *Settings {
	s.name = name
	return s
}

// Name returns the configured mock name, which may be empty.
func (s *Settings) Name() string {
	return s.name
}

// WithExtraInterfaces declares additional interfaces the mock should
// implement beyond its primary type. Repeated calls accumulate:
// interfaces already declared are kept and duplicates are ignored, so
// the set grows in first-seen order.
//
// Panics with *InvalidConfigurationError when called without
// interfaces, with a nil type, or with a type that is not an
// interface.
func (s *Settings) WithExtraInterfaces(intfs ...reflect.Type) *Settings {
	must(validateExtraInterfaces("WithExtraInterfaces", intfs))
	for _, t := range intfs {
		if !containsType(s.extraInterfaces, t) {
			s.extraInterfaces = append(s.extraInterfaces, t)
		}
	}
	return s
}

// ExtraInterfaces returns the declared extra interfaces in first-seen
// order. The returned slice is a copy; mutating it does not affect the
// settings.
func (s *Settings) ExtraInterfaces() []reflect.Type {
	out := make([]reflect.Type, len(s.extraInterfaces))
	copy(out, s.extraInterfaces)
	return out
}

// WithSerializable marks the mock as serializable. The flag is one-way:
// once set it cannot be cleared.
func (s *Settings) WithSerializable() *Settings {
	s.serializable = true
	return s
}

// IsSerializable reports whether the mock was marked serializable.
func (s *Settings) IsSerializable() bool {
	return s.serializable
}

// WithStubOnly marks the mock as stub-only. Stub-only mocks do not
// retain invocations for verification, which keeps memory flat when a
// mock is called very often.
func (s *Settings) WithStubOnly() *Settings {
	s.stubOnly = true
	return s
}

// IsStubOnly reports whether the mock was marked stub-only.
func (s *Settings) IsStubOnly() bool {
	return s.stubOnly
}

// WithStrictness sets the stubbing hygiene level for this mock,
// overriding the globally configured default.
//
// Panics with *InvalidConfigurationError for values outside the
// defined levels.
func (s *Settings) WithStrictness(strictness Strictness) *Settings {
	if !strictness.valid() {
		panic(&InvalidConfigurationError{
			Operation: "WithStrictness",
			Reason:    "does not accept an unknown strictness level",
		})
	}
	s.strictness = strictness
	return s
}

// Strictness returns the configured strictness level.
func (s *Settings) Strictness() Strictness {
	return s.strictness
}

// WithDefaultAnswer sets the answer used for invocations that hit no
// specific stubbing.
//
// Panics with *InvalidConfigurationError when answer is nil.
func (s *Settings) WithDefaultAnswer(answer Answer) *Settings {
	if isNilValue(answer) {
		panic(&InvalidConfigurationError{
			Operation: "WithDefaultAnswer",
			Reason:    "does not accept a nil answer",
		})
	}
	s.defaultAnswer = answer
	return s
}

// DefaultAnswer returns the configured default answer, or nil when
// none was set. Build resolves nil to ReturnsDefaults.
func (s *Settings) DefaultAnswer() Answer {
	return s.defaultAnswer
}

// WithMockMaker selects the strategy used to construct the mock
// instance. The empty value resolves to MockMakerReflect at build
// time.
//
// Panics with *InvalidConfigurationError for unknown makers.
func (s *Settings) WithMockMaker(maker MockMaker) *Settings {
	if !maker.valid() {
		panic(&InvalidConfigurationError{
			Operation: "WithMockMaker",
			Reason:    fmt.Sprintf("does not accept unknown mock maker %q", maker),
		})
	}
	s.mockMaker = maker
	return s
}

// MockMaker returns the configured mock maker, which may be empty.
func (s *Settings) MockMaker() MockMaker {
	return s.mockMaker
}

// WithLogger sets the logger used by listeners this settings installs
// itself, such as the verbose logger. A nil logger falls back to the
// default text logger on stderr.
func (s *Settings) WithLogger(logger *slog.Logger) *Settings {
	s.logger = logger
	return s
}

// EnableVerboseLogging installs a listeners.VerboseLogger that logs
// every invocation on the mock. Enabling twice, or enabling after a
// VerboseLogger was added explicitly, keeps a single verbose logger
// registered. Other listeners are never deduplicated.
func (s *Settings) EnableVerboseLogging() *Settings {
	for _, l := range s.invocationListeners {
		if _, ok := l.(*listeners.VerboseLogger); ok {
			return s
		}
	}
	return s.AddInvocationListeners(listeners.NewVerboseLogger(s.logger))
}

// AddInvocationListeners registers listeners notified after every
// invocation on the mock. Listeners are invoked in registration order;
// registering the same listener twice invokes it twice.
//
// Panics with *InvalidConfigurationError when called without listeners
// or with a nil listener. A failed call registers nothing.
func (s *Settings) AddInvocationListeners(ls ...listeners.InvocationListener) *Settings {
	if ls == nil {
		ls = []listeners.InvocationListener{}
	}
	must(addListeners("AddInvocationListeners", ls, &s.invocationListeners))
	return s
}

// HasInvocationListeners reports whether any invocation listener is
// registered.
func (s *Settings) HasInvocationListeners() bool {
	return len(s.invocationListeners) > 0
}

// InvocationListeners returns the registered invocation listeners in
// registration order. The returned slice is a copy; mutating it does
// not affect the settings.
func (s *Settings) InvocationListeners() []listeners.InvocationListener {
	out := make([]listeners.InvocationListener, len(s.invocationListeners))
	copy(out, s.invocationListeners)
	return out
}

// AddStubbingLookupListeners registers listeners notified whenever an
// invocation is resolved against the mock's stubbings. Listeners are
// invoked in registration order; registering the same listener twice
// invokes it twice.
//
// Panics with *InvalidConfigurationError when called without listeners
// or with a nil listener. A failed call registers nothing.
func (s *Settings) AddStubbingLookupListeners(ls ...listeners.StubbingLookupListener) *Settings {
	if ls == nil {
		ls = []listeners.StubbingLookupListener{}
	}
	must(addListeners("AddStubbingLookupListeners", ls, &s.stubbingLookupListeners))
	return s
}

// StubbingLookupListeners returns the registered stubbing lookup
// listeners in registration order. The returned slice is a copy;
// mutating it does not affect the settings.
func (s *Settings) StubbingLookupListeners() []listeners.StubbingLookupListener {
	out := make([]listeners.StubbingLookupListener, len(s.stubbingLookupListeners))
	copy(out, s.stubbingLookupListeners)
	return out
}

// AddVerificationStartedListeners registers listeners notified before
// verification of the mock begins. Listeners are invoked in
// registration order; registering the same listener twice invokes it
// twice.
//
// Panics with *InvalidConfigurationError when called without listeners
// or with a nil listener. A failed call registers nothing.
func (s *Settings) AddVerificationStartedListeners(ls ...listeners.VerificationStartedListener) *Settings {
	if ls == nil {
		ls = []listeners.VerificationStartedListener{}
	}
	must(addListeners("AddVerificationStartedListeners", ls, &s.verificationStartedListeners))
	return s
}

// VerificationStartedListeners returns the registered verification
// started listeners in registration order. The returned slice is a
// copy; mutating it does not affect the settings.
func (s *Settings) VerificationStartedListeners() []listeners.VerificationStartedListener {
	out := make([]listeners.VerificationStartedListener, len(s.verificationStartedListeners))
	copy(out, s.verificationStartedListeners)
	return out
}
