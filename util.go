package strfmt

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	out := make([]string, 0, len(s))

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}

	return out
}

func splitFirst(s string) (first, rest string) {
	first, rest, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	return first, rest
}

func length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func join(parts []string) string {
	return strings.Join(parts, "")
}

// isSpace treats the byte order mark as white space and NEL as text.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
