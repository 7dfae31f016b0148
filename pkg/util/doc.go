// Package util provides shared helpers for log-value truncation used
// across mockkit packages.
//
//   - TruncateValue — cap rendered argument and return values for safe logging
package util
