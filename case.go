// Package strfmt provides small, pure string formatting helpers: case style
// conversion, masking of sensitive values, truncation and white space checks.
package strfmt

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	separatorRun = regexp.MustCompile(`[-_]+(\w)`)
	upperASCII   = regexp.MustCompile(`([A-Z])`)
)

// Capitalize upper-cases the first character of s and leaves the rest as is.
func Capitalize(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}

	first, rest := splitFirst(s)

	return cases.Upper(language.Und).String(first) + rest, nil
}

// CamelCase turns "hello_world" and "user-name" into "helloWorld" and "userName".
func CamelCase(s string) string {
	if s == "" {
		return s
	}

	matches := separatorRun.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(strings.ToUpper(s[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}

// PascalCase is CamelCase with the first character upper-cased.
func PascalCase(s string) string {
	if s == "" {
		return s
	}

	// CamelCase never shrinks a non-empty string to nothing.
	out, _ := Capitalize(CamelCase(s))

	return out
}

// SnakeCase turns "helloWorld" into "hello_world". A separator produced by a
// leading upper-case letter is dropped.
func SnakeCase(s string) string {
	if s == "" {
		return s
	}

	return strings.TrimPrefix(separateUpper(s, "_"), "_")
}

// KebabCase turns "helloWorld" into "hello-world". Unlike SnakeCase it keeps
// the separator produced by a leading upper-case letter, so "XMLHttpRequest"
// becomes "-x-m-l-http-request".
func KebabCase(s string) string {
	if s == "" {
		return s
	}

	return separateUpper(s, "-")
}

func separateUpper(s, sep string) string {
	return cases.Lower(language.Und).String(upperASCII.ReplaceAllString(s, sep+"$1"))
}
