package strfmt

import "strings"

// DefaultTruncateSuffix is appended by Truncate when it shortens a string.
const DefaultTruncateSuffix = "..."

// Truncate shortens s to at most maxLength characters, ending with "...".
func Truncate(s string, maxLength int) string {
	return TruncateWith(s, maxLength, DefaultTruncateSuffix)
}

// TruncateWith shortens s to at most maxLength characters, ending with suffix.
// When maxLength leaves no room beyond the suffix, the suffix alone is returned.
func TruncateWith(s string, maxLength int, suffix string) string {
	if s == "" {
		return s
	}

	parts := graphemes(s)
	if len(parts) <= maxLength {
		return s
	}

	keep := maxLength - length(suffix)
	if keep <= 0 {
		return suffix
	}

	return join(parts[:keep]) + suffix
}

// Trim removes leading and trailing white space.
func Trim(s string) string {
	if s == "" {
		return s
	}

	return strings.TrimFunc(s, isSpace)
}

// IsEmpty reports whether s is empty or holds only white space.
func IsEmpty(s string) bool {
	return Trim(s) == ""
}
