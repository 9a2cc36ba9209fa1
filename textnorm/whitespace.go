package textnorm

import (
	"strings"
	"unicode"
)

// Whitespace collapses whitespace runs to one space and trims both ends.
func Whitespace(text string) string {
	if text == "" {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(text))
	needSpace := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			// Only separate words; leading whitespace is dropped.
			if builder.Len() > 0 {
				needSpace = true
			}
			continue
		}
		if needSpace {
			builder.WriteByte(' ')
			needSpace = false
		}
		builder.WriteRune(r)
	}

	return builder.String()
}
