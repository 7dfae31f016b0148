package mock

import (
	"fmt"
	"reflect"

	"github.com/mockkit/mockkit/internal/id"
	"github.com/mockkit/mockkit/pkg/listeners"
)

// CreationSettings is the immutable result of building a Settings. It
// carries everything a mock maker needs to construct the mock instance
// and everything the instance needs to notify its listeners.
//
// The slices are snapshots taken at build time; changing the Settings
// afterwards does not affect a CreationSettings already built from it.
// Treat the fields as read-only.
type CreationSettings struct {
	// MockID is a unique identifier assigned at build time, used to
	// correlate log entries and recorded invocations.
	MockID string

	// PrimaryType is the interface the mock implements.
	PrimaryType reflect.Type

	// Name is the resolved mock name, never empty.
	Name string

	// ExtraInterfaces are additional interfaces the mock implements,
	// in first-seen order.
	ExtraInterfaces []reflect.Type

	// Serializable marks the mock as serializable.
	Serializable bool

	// StubOnly marks the mock as not retaining invocations for
	// verification.
	StubOnly bool

	// Strictness is the stubbing hygiene level for this mock.
	Strictness Strictness

	// DefaultAnswer answers invocations that hit no stubbing. Never
	// nil.
	DefaultAnswer Answer

	// MockMaker is the resolved construction strategy. Never empty.
	MockMaker MockMaker

	// InvocationListeners are notified after every invocation.
	InvocationListeners []listeners.InvocationListener

	// StubbingLookupListeners are notified on every stubbing lookup.
	StubbingLookupListeners []listeners.StubbingLookupListener

	// VerificationStartedListeners are notified before verification
	// begins.
	VerificationStartedListeners []listeners.VerificationStartedListener
}

// Build validates the accumulated configuration against the primary
// interface the mock will implement and produces the CreationSettings
// a mock maker consumes.
//
// The mock name defaults to the primary type's name with its leading
// rune lowercased, the default answer to ReturnsDefaults and the mock
// maker to MockMakerReflect. Build assigns a fresh MockID on every
// call.
//
// Build returns an *InvalidConfigurationError when primaryType is nil
// or not an interface, or when the extra interfaces contain the
// primary type itself.
func (s *Settings) Build(primaryType reflect.Type) (*CreationSettings, error) {
	if primaryType == nil {
		return nil, &InvalidConfigurationError{
			Operation: "Build",
			Reason:    "requires a primary interface type",
		}
	}
	if primaryType.Kind() != reflect.Interface {
		return nil, &InvalidConfigurationError{
			Operation: "Build",
			Reason:    fmt.Sprintf("accepts only interfaces, got %v", primaryType),
		}
	}
	if containsType(s.extraInterfaces, primaryType) {
		return nil, &InvalidConfigurationError{
			Operation: "Build",
			Reason:    fmt.Sprintf("extra interfaces must not contain the mocked type %v", primaryType),
		}
	}

	name := s.name
	if name == "" {
		name = id.InstanceName(primaryType)
	}
	answer := s.defaultAnswer
	if answer == nil {
		answer = ReturnsDefaults
	}
	maker := s.mockMaker
	if maker == "" {
		maker = MockMakerReflect
	}

	return &CreationSettings{
		MockID:                       id.UUID(),
		PrimaryType:                  primaryType,
		Name:                         name,
		ExtraInterfaces:              s.ExtraInterfaces(),
		Serializable:                 s.serializable,
		StubOnly:                     s.stubOnly,
		Strictness:                   s.strictness,
		DefaultAnswer:                answer,
		MockMaker:                    maker,
		InvocationListeners:          s.InvocationListeners(),
		StubbingLookupListeners:      s.StubbingLookupListeners(),
		VerificationStartedListeners: s.VerificationStartedListeners(),
	}, nil
}

// MustBuild is like Build but panics on error. Intended for package
// initialization and tests where the configuration is known good.
func (s *Settings) MustBuild(primaryType reflect.Type) *CreationSettings {
	cs, err := s.Build(primaryType)
	if err != nil {
		panic(err)
	}
	return cs
}

// NotifyInvocation delivers the report to every registered invocation
// listener, in registration order. Mock implementations call this
// after each method invocation completes.
func (cs *CreationSettings) NotifyInvocation(report *listeners.InvocationReport) {
	for _, l := range cs.InvocationListeners {
		l.ReportInvocation(report)
	}
}

// NotifyStubbingLookup delivers the event to every registered stubbing
// lookup listener, in registration order.
func (cs *CreationSettings) NotifyStubbingLookup(event *listeners.StubbingLookupEvent) {
	for _, l := range cs.StubbingLookupListeners {
		l.OnStubbingLookup(event)
	}
}

// StartVerification notifies verification started listeners and
// returns the object verification should proceed against, which a
// listener may have substituted.
func (cs *CreationSettings) StartVerification(mock any) any {
	event := listeners.NewVerificationStartedEvent(mock, cs.Name)
	for _, l := range cs.VerificationStartedListeners {
		l.OnVerificationStarted(event)
	}
	return event.Mock()
}

// Implements reports whether the mock built from these settings covers
// the given interface, either as the primary type or as one of the
// extra interfaces.
func (cs *CreationSettings) Implements(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t == cs.PrimaryType {
		return true
	}
	return containsType(cs.ExtraInterfaces, t)
}
