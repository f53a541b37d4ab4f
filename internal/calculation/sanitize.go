package calculation

import "strings"

// Sanitize keeps only ASCII digits and the first '.' of s.
// Sanitize(Sanitize(s)) == Sanitize(s) for every s.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	seenDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '.' && !seenDot:
			seenDot = true
			b.WriteByte(c)
		}
	}
	return b.String()
}

// stripNonNumeric removes everything except digits and dots, keeping every dot
func stripNonNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}
