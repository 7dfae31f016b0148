package mock

import "fmt"

// InvalidConfigurationError reports a settings operation invoked with
// unusable values, such as a nil listener or a non-interface type
// passed as an extra interface.
type InvalidConfigurationError struct {
	// Operation is the settings method the bad value was passed to,
	// e.g. "WithExtraInterfaces".
	Operation string

	// Reason describes what was wrong with the value.
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s() %s", e.Operation, e.Reason)
}

// must panics with err when err is non-nil. Fluent setters fail fast
// through must, so a misconfigured chain stops at the offending call
// instead of carrying a broken settings object forward.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
