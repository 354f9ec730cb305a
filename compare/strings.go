package compare

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"facette.io/natsort"
)

// Fold returns the case-folded form of s used by FoldString and EqualFold.
// Each rune is upper-cased on its own with the simple Unicode mapping, so the
// folded string has as many runes as s: "ß" stays "ß" rather than becoming
// "SS". Upper-casing keeps characters sitting between the ASCII letter ranges
// ('[', '_', '`', ...) in their ordinal position relative to letters.
// Bytes that are not valid UTF-8 are copied unchanged.
func Fold(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
		} else {
			sb.WriteRune(unicode.ToUpper(r))
		}

		i += size
	}

	return sb.String()
}

// FoldString compares a and b ordinally after case folding. It is not a
// collation: "é" and "e" are different, and the result depends only on the
// bytes of the folded strings.
func FoldString(a, b string) int {
	if a == b {
		return 0
	}

	return strings.Compare(Fold(a), Fold(b))
}

// EqualFold reports whether a and b are equal under FoldString.
func EqualFold(a, b string) bool {
	return FoldString(a, b) == 0
}

// NaturalString orders strings so that embedded numbers compare numerically
// ("file2" before "file10"). Strings that natsort considers equivalent fall
// back to a plain byte comparison to keep the order total.
func NaturalString(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return strings.Compare(a, b)
	}
}
