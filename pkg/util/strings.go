// Package util provides shared utility functions for mockkit.
package util

// MaxLogValueSize is the default maximum rendered-value size for logging (10KB).
const MaxLogValueSize = 10 * 1024

// TruncateValue truncates a string to maxSize bytes, appending "...(truncated)" if truncated.
// If maxSize <= 0, uses MaxLogValueSize.
func TruncateValue(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogValueSize
	}
	if len(data) > maxSize {
		return data[:maxSize] + "...(truncated)"
	}
	return data
}
