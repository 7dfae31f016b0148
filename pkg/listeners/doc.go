// Package listeners defines the observer contracts for mock objects.
//
// Mocks built from a mock.Settings notify registered listeners at three
// points of their lifecycle:
//
//   - InvocationListener receives an InvocationReport after every call
//     on the mock, including the returned value or error and, when the
//     call hit a configured stubbing, where that stubbing was declared.
//   - StubbingLookupListener is notified whenever the mock resolves an
//     incoming call against its configured stubbings, whether or not a
//     stubbing was found.
//   - VerificationStartedListener fires before verification of a mock
//     begins and may redirect verification to a different object.
//
// Listeners are invoked synchronously, in registration order. A
// listener registered twice is invoked twice.
//
// # Implementations
//
// The package ships three ready-made invocation listeners:
//
//   - VerboseLogger writes every report through a *slog.Logger, with
//     arguments and return values rendered by go-spew.
//   - Recorder retains reports in a bounded in-memory buffer and
//     supports filtered queries and live subscriptions.
//   - FilterListener guards a delegate listener with an expr-lang
//     predicate, forwarding only matching reports.
package listeners
