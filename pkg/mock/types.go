package mock

import (
	"fmt"
	"strings"

	"github.com/mockkit/mockkit/pkg/listeners"
)

// Strictness controls how strictly a mock enforces stubbing hygiene.
type Strictness int

const (
	// StrictnessDefault inherits the strictness configured globally.
	StrictnessDefault Strictness = iota

	// StrictnessLenient disables stubbing hygiene checks entirely.
	StrictnessLenient

	// StrictnessWarn reports unused stubbings and argument mismatches
	// as warnings without failing the test.
	StrictnessWarn

	// StrictnessStrictStubs rejects unused stubbings and argument
	// mismatches outright.
	StrictnessStrictStubs
)

// String returns the canonical name of the strictness level.
func (s Strictness) String() string {
	switch s {
	case StrictnessLenient:
		return "lenient"
	case StrictnessWarn:
		return "warn"
	case StrictnessStrictStubs:
		return "strict-stubs"
	default:
		return "default"
	}
}

// valid reports whether s is one of the defined strictness levels.
func (s Strictness) valid() bool {
	return s >= StrictnessDefault && s <= StrictnessStrictStubs
}

// ParseStrictness parses a strictness name, case-insensitively.
// Valid values: "default", "lenient", "warn", "strict-stubs".
func ParseStrictness(s string) (Strictness, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return StrictnessDefault, nil
	case "lenient":
		return StrictnessLenient, nil
	case "warn":
		return StrictnessWarn, nil
	case "strict-stubs", "strict_stubs", "strictstubs":
		return StrictnessStrictStubs, nil
	default:
		return StrictnessDefault, fmt.Errorf("unknown strictness %q", s)
	}
}

// MockMaker identifies the strategy used to construct mock instances
// from a CreationSettings.
type MockMaker string

const (
	// MockMakerReflect builds mock instances dynamically at runtime
	// through reflection.
	MockMakerReflect MockMaker = "reflect"

	// MockMakerSource expects generated mock implementations compiled
	// into the test binary.
	MockMakerSource MockMaker = "source"
)

// valid reports whether m names a known mock maker. The empty string
// is valid and resolves to MockMakerReflect at build time.
func (m MockMaker) valid() bool {
	switch m {
	case "", MockMakerReflect, MockMakerSource:
		return true
	default:
		return false
	}
}

// ParseMockMaker parses a mock maker name, case-insensitively.
// Valid values: "reflect", "source". The empty string resolves to
// MockMakerReflect.
func ParseMockMaker(s string) (MockMaker, error) {
	switch strings.ToLower(s) {
	case "reflect", "":
		return MockMakerReflect, nil
	case "source":
		return MockMakerSource, nil
	default:
		return MockMakerReflect, fmt.Errorf("unknown mock maker %q", s)
	}
}

// Answer computes the reply for an invocation that hit no specific
// stubbing. It defines the default behavior of a mock.
type Answer interface {
	Answer(invocation *listeners.Invocation) (any, error)
}

// AnswerFunc adapts a plain function to the Answer interface.
type AnswerFunc func(invocation *listeners.Invocation) (any, error)

// Answer calls f.
func (f AnswerFunc) Answer(invocation *listeners.Invocation) (any, error) {
	return f(invocation)
}

// ReturnsDefaults is the standard default answer: every unstubbed call
// yields a nil value and no error.
var ReturnsDefaults Answer = AnswerFunc(func(*listeners.Invocation) (any, error) {
	return nil, nil
})
