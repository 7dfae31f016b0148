package listeners

import (
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/mockkit/mockkit/pkg/logging"
	"github.com/mockkit/mockkit/pkg/util"
)

// dumpConf renders argument and return values for log output. Pointer
// addresses and capacities are noise in test logs and are disabled.
var dumpConf = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// VerboseLogger is an InvocationListener that logs every report it
// receives. It is the listener installed by EnableVerboseLogging on a
// mock.Settings; at most one VerboseLogger is ever registered per
// settings, regardless of how often verbose logging is enabled.
type VerboseLogger struct {
	logger *slog.Logger
}

// NewVerboseLogger creates a verbose invocation logger writing through
// the given logger. A nil logger falls back to the default text logger
// on stderr.
func NewVerboseLogger(logger *slog.Logger) *VerboseLogger {
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}
	return &VerboseLogger{logger: logger}
}

// ReportInvocation logs the mock name, method, arguments and outcome of
// the invocation at info level.
func (v *VerboseLogger) ReportInvocation(report *InvocationReport) {
	if report == nil || report.Invocation == nil {
		return
	}
	inv := report.Invocation

	attrs := []any{
		"mock", inv.MockName,
		"method", inv.Method,
		"args", dump(inv.Args),
	}
	if report.Failed() {
		attrs = append(attrs, "error", report.Err.Error())
	} else {
		attrs = append(attrs, "returned", dump(report.ReturnedValue))
	}
	if report.Stubbed() {
		attrs = append(attrs, "stubbedAt", report.StubbingLocation)
	}

	v.logger.Info("mock invocation", attrs...)
}

// dump renders a value for log output, capped so oversized arguments
// cannot flood the log.
func dump(v any) string {
	return util.TruncateValue(dumpConf.Sprintf("%#v", v), 0)
}
