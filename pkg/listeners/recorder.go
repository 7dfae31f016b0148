package listeners

import (
	"sync"
	"time"
)

// Subscriber receives newly recorded invocation reports.
type Subscriber chan *InvocationReport

// Filter narrows the reports returned by Recorder.List. Zero-valued
// fields match everything.
type Filter struct {
	// MockName matches reports for the named mock only.
	MockName string

	// Method matches reports for the named method only.
	Method string

	// Stubbed, when set, matches reports whose invocation did (true)
	// or did not (false) hit a configured stubbing.
	Stubbed *bool

	// Failed, when set, matches reports whose invocation did (true)
	// or did not (false) end in an error.
	Failed *bool

	// Offset skips that many matching reports, newest first.
	Offset int

	// Limit caps the number of returned reports. Zero means no limit.
	Limit int
}

// Recorder is an InvocationListener that retains reports in an
// in-memory circular buffer for later inspection. It is safe for
// concurrent use by multiple goroutines.
type Recorder struct {
	reports     []*InvocationReport
	maxReports  int
	mu          sync.RWMutex
	nextID      int64
	subscribers map[Subscriber]struct{}
	subMu       sync.RWMutex
}

// NewRecorder creates a Recorder with the given capacity. A capacity
// of zero or less falls back to the default of 1000 reports.
func NewRecorder(maxReports int) *Recorder {
	if maxReports <= 0 {
		maxReports = 1000 // Default
	}
	return &Recorder{
		reports:     make([]*InvocationReport, 0, maxReports),
		maxReports:  maxReports,
		subscribers: make(map[Subscriber]struct{}),
	}
}

// ReportInvocation records the report, evicting the oldest report once
// the buffer is full, and notifies subscribers without blocking.
func (r *Recorder) ReportInvocation(report *InvocationReport) {
	if report == nil || report.Invocation == nil {
		return
	}

	r.mu.Lock()

	// Assign ID if not set
	if report.Invocation.ID == "" {
		r.nextID++
		report.Invocation.ID = generateInvocationID(r.nextID)
	}

	// Set timestamp if not set
	if report.Invocation.Timestamp.IsZero() {
		report.Invocation.Timestamp = time.Now()
	}

	// FIFO eviction: remove oldest if at capacity
	if len(r.reports) >= r.maxReports {
		r.reports = r.reports[1:]
	}

	r.reports = append(r.reports, report)
	r.mu.Unlock()

	// Notify subscribers (non-blocking)
	r.subMu.RLock()
	for sub := range r.subscribers {
		select {
		case sub <- report:
		default:
			// Drop if subscriber is slow
		}
	}
	r.subMu.RUnlock()
}

// Get retrieves a recorded report by invocation ID.
func (r *Recorder) Get(id string) *InvocationReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, report := range r.reports {
		if report.Invocation.ID == id {
			return report
		}
	}
	return nil
}

// List returns recorded reports, newest first, optionally filtered.
func (r *Recorder) List(filter *Filter) []*InvocationReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*InvocationReport, 0, len(r.reports))

	// Iterate in reverse order (newest first)
	for i := len(r.reports) - 1; i >= 0; i-- {
		report := r.reports[i]

		if filter != nil && !matchesFilter(report, filter) {
			continue
		}

		result = append(result, report)
	}

	// Apply offset and limit
	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(result) {
				return []*InvocationReport{}
			}
			result = result[filter.Offset:]
		}
		if filter.Limit > 0 && filter.Limit < len(result) {
			result = result[:filter.Limit]
		}
	}

	return result
}

// matchesFilter checks if a report matches all filter criteria.
func matchesFilter(report *InvocationReport, filter *Filter) bool {
	inv := report.Invocation

	if filter.MockName != "" && inv.MockName != filter.MockName {
		return false
	}
	if filter.Method != "" && inv.Method != filter.Method {
		return false
	}
	if filter.Stubbed != nil && *filter.Stubbed != report.Stubbed() {
		return false
	}
	if filter.Failed != nil && *filter.Failed != report.Failed() {
		return false
	}

	return true
}

// Clear removes all recorded reports.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = make([]*InvocationReport, 0, r.maxReports)
}

// Count returns the number of recorded reports.
func (r *Recorder) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}

// CountByMock returns the number of recorded reports for the named mock.
func (r *Recorder) CountByMock(mockName string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, report := range r.reports {
		if report.Invocation.MockName == mockName {
			count++
		}
	}
	return count
}

// ClearByMock removes all recorded reports for the named mock.
func (r *Recorder) ClearByMock(mockName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]*InvocationReport, 0, len(r.reports))
	for _, report := range r.reports {
		if report.Invocation.MockName != mockName {
			filtered = append(filtered, report)
		}
	}
	r.reports = filtered
}

// Subscribe registers a subscriber to receive new reports as they are
// recorded. Returns the receiving channel and an unsubscribe function.
func (r *Recorder) Subscribe() (Subscriber, func()) {
	ch := make(Subscriber, 100) // Buffer to prevent blocking

	r.subMu.Lock()
	r.subscribers[ch] = struct{}{}
	r.subMu.Unlock()

	unsubscribe := func() {
		r.subMu.Lock()
		delete(r.subscribers, ch)
		r.subMu.Unlock()
		close(ch)
	}

	return ch, unsubscribe
}

// generateInvocationID generates a unique invocation ID.
func generateInvocationID(n int64) string {
	return "inv-" + generateShortID(n)
}

// generateShortID generates a short ID from a number.
func generateShortID(n int64) string {
	const charset = "0123456789abcdefghijklmnopqrstuvwxyz"
	if n == 0 {
		return "0"
	}

	var result []byte
	for n > 0 {
		result = append([]byte{charset[n%36]}, result...)
		n /= 36
	}
	return string(result)
}
