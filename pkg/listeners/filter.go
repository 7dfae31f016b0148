package listeners

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FilterListener forwards invocation reports to a delegate listener
// only when a predicate expression evaluates to true.
//
// Predicates use expr-lang syntax and see these variables:
//
//	mock     string  mock name
//	method   string  invoked method name
//	args     []any   invocation arguments
//	stubbed  bool    whether the call hit a configured stubbing
//	failed   bool    whether the call ended in an error
//
// Example:
//
//	rec := listeners.NewRecorder(0)
//	fl, err := listeners.NewFilterListener(`mock == "userRepository" && !stubbed`, rec)
type FilterListener struct {
	expression string
	program    *vm.Program
	delegate   InvocationListener
}

// NewFilterListener compiles the predicate and wraps the delegate.
// The predicate must evaluate to a boolean.
func NewFilterListener(expression string, delegate InvocationListener) (*FilterListener, error) {
	if delegate == nil {
		return nil, errors.New("filter listener requires a delegate")
	}

	program, err := expr.Compile(expression, expr.Env(predicateEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}

	return &FilterListener{
		expression: expression,
		program:    program,
		delegate:   delegate,
	}, nil
}

// Expression returns the predicate source.
func (f *FilterListener) Expression() string {
	return f.expression
}

// ReportInvocation evaluates the predicate against the report and
// forwards it to the delegate on a match. A predicate that fails to
// evaluate matches nothing.
func (f *FilterListener) ReportInvocation(report *InvocationReport) {
	if report == nil || report.Invocation == nil {
		return
	}

	result, err := expr.Run(f.program, predicateEnv(report))
	if err != nil {
		return
	}

	if match, ok := result.(bool); ok && match {
		f.delegate.ReportInvocation(report)
	}
}

// predicateEnv builds the evaluation environment for a report. A nil
// report yields the prototype environment used at compile time.
func predicateEnv(report *InvocationReport) map[string]interface{} {
	if report == nil {
		return map[string]interface{}{
			"mock":    "",
			"method":  "",
			"args":    []any(nil),
			"stubbed": false,
			"failed":  false,
		}
	}
	return map[string]interface{}{
		"mock":    report.Invocation.MockName,
		"method":  report.Invocation.Method,
		"args":    report.Invocation.Args,
		"stubbed": report.Stubbed(),
		"failed":  report.Failed(),
	}
}
