// Package utils provides shared utilities for text and logging.
package utils

// Excerpt returns the first maxChars characters of s, counted in runes so a
// multi-byte character is never split. If maxChars is 0 or negative, returns
// s unchanged.
func Excerpt(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}

// Truncate returns s truncated to maxLen bytes, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
