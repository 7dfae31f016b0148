package mock

import (
	"fmt"
	"reflect"
)

// addListeners validates the incoming listeners and appends them to
// target. Validation completes before target is touched, so a failed
// call leaves the settings unchanged. Duplicates are allowed and
// preserved in registration order.
//
// The operation string names the public method on whose behalf the
// validation runs and appears in error messages.
func addListeners[T any](operation string, incoming []T, target *[]T) error {
	if incoming == nil {
		return &InvalidConfigurationError{
			Operation: operation,
			Reason:    "does not accept a nil listener slice",
		}
	}
	if len(incoming) == 0 {
		return &InvalidConfigurationError{
			Operation: operation,
			Reason:    "requires at least one listener",
		}
	}
	for _, listener := range incoming {
		if isNilValue(listener) {
			return &InvalidConfigurationError{
				Operation: operation,
				Reason:    "does not accept nil listeners",
			}
		}
	}

	*target = append(*target, incoming...)
	return nil
}

// validateExtraInterfaces checks that the given types are usable as
// extra interfaces: at least one, none nil, all of interface kind.
func validateExtraInterfaces(operation string, intfs []reflect.Type) error {
	if len(intfs) == 0 {
		return &InvalidConfigurationError{
			Operation: operation,
			Reason:    "requires at least one interface",
		}
	}
	for _, t := range intfs {
		if t == nil {
			return &InvalidConfigurationError{
				Operation: operation,
				Reason:    "does not accept nil parameters",
			}
		}
		if t.Kind() != reflect.Interface {
			return &InvalidConfigurationError{
				Operation: operation,
				Reason:    fmt.Sprintf("accepts only interfaces, got %v", t),
			}
		}
	}
	return nil
}

// isNilValue reports whether v is nil, including a typed nil pointer
// boxed in a non-nil interface value.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// containsType reports whether types includes t.
func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
