package listeners

import "time"

// Invocation captures a single call observed on a mock.
type Invocation struct {
	// ID is a unique identifier for the invocation. The Recorder
	// assigns one when a report is first recorded.
	ID string `json:"id,omitempty"`

	// Timestamp is when the invocation happened.
	Timestamp time.Time `json:"timestamp"`

	// MockID identifies the mock instance the call was made on.
	MockID string `json:"mockId,omitempty"`

	// MockName is the human-readable name of the mock.
	MockName string `json:"mockName"`

	// Method is the name of the invoked method.
	Method string `json:"method"`

	// Args are the arguments the method was invoked with.
	Args []any `json:"args,omitempty"`
}

// InvocationReport describes a completed mock invocation together with
// its outcome. A report carries either a returned value (possibly nil)
// or an error, never both.
type InvocationReport struct {
	// Invocation is the call this report describes.
	Invocation *Invocation `json:"invocation"`

	// ReturnedValue is the value the invocation produced. Meaningless
	// when Err is non-nil.
	ReturnedValue any `json:"returnedValue,omitempty"`

	// Err is the error the invocation ended with, if any.
	Err error `json:"-"`

	// StubbingLocation is where the stubbing that answered this call
	// was declared. Empty when the call hit no stubbing.
	StubbingLocation string `json:"stubbingLocation,omitempty"`
}

// Failed reports whether the invocation ended in an error.
func (r *InvocationReport) Failed() bool {
	return r.Err != nil
}

// Stubbed reports whether the invocation was answered by a configured
// stubbing.
func (r *InvocationReport) Stubbed() bool {
	return r.StubbingLocation != ""
}

// InvocationListener is notified after every invocation on a mock.
//
// Listeners run synchronously on the calling goroutine, in the order
// they were registered. A panic in a listener propagates to the caller
// of the mocked method.
type InvocationListener interface {
	ReportInvocation(report *InvocationReport)
}

// Stubbing identifies a configured stubbed answer on a mock.
type Stubbing struct {
	// Method is the stubbed method name.
	Method string `json:"method"`

	// Location is where the stubbing was declared, typically a
	// file:line string.
	Location string `json:"location,omitempty"`
}

// StubbingLookupEvent describes one attempt to resolve an invocation
// against a mock's configured stubbings.
type StubbingLookupEvent struct {
	// Invocation is the call being resolved.
	Invocation *Invocation `json:"invocation"`

	// StubbingFound is the stubbing that matched, or nil when the
	// invocation hit no stubbing.
	StubbingFound *Stubbing `json:"stubbingFound,omitempty"`

	// AllStubbings lists every stubbing configured on the mock at
	// lookup time.
	AllStubbings []Stubbing `json:"allStubbings,omitempty"`

	// MockName is the name of the mock the lookup ran against.
	MockName string `json:"mockName"`
}

// StubbingLookupListener is notified on every stubbing lookup,
// including lookups that find no stubbing. Useful for detecting
// unused or mismatched stubbings.
type StubbingLookupListener interface {
	OnStubbingLookup(event *StubbingLookupEvent)
}

// VerificationStartedEvent fires before verification of a mock begins.
// A listener may substitute the object under verification with SetMock,
// which redirects the verification that follows.
type VerificationStartedEvent struct {
	mock     any
	mockName string
}

// NewVerificationStartedEvent creates an event for the given mock.
func NewVerificationStartedEvent(mock any, mockName string) *VerificationStartedEvent {
	return &VerificationStartedEvent{mock: mock, mockName: mockName}
}

// Mock returns the object verification will run against.
func (e *VerificationStartedEvent) Mock() any {
	return e.mock
}

// SetMock replaces the object verification will run against.
func (e *VerificationStartedEvent) SetMock(mock any) {
	e.mock = mock
}

// MockName returns the name of the mock being verified.
func (e *VerificationStartedEvent) MockName() string {
	return e.mockName
}

// VerificationStartedListener is notified when verification of a mock
// is about to begin.
type VerificationStartedListener interface {
	OnVerificationStarted(event *VerificationStartedEvent)
}
