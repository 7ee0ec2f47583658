// Package log holds small helpers for log-safe string handling.
package log

// defaultMaxPreviewLen caps preview length: raw node payloads and
// captured process output can run to many kilobytes.
const defaultMaxPreviewLen = 100

// Preview returns a log-safe preview of str.
//
// maxLen is optional and defaults to defaultMaxPreviewLen.
// Returns:
//   - the original string if it fits within the effective max length
//   - a truncated string with a trailing ellipsis otherwise
func Preview(str string, maxLen ...int) string {
	l := defaultMaxPreviewLen
	if len(maxLen) > 0 {
		l = maxLen[0]
	}
	return truncateWithEllipsis(str, l)
}

func truncateWithEllipsis(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
