package common

// IsPrint reports whether b renders as a visible character rather than a
// control byte. Bytes above 0x7F belong to multi-byte UTF-8 sequences and
// count as printable; sequence boundaries are tracked by the callers.
func IsPrint(b byte) bool {
	return b >= 0x20 && b != 0x7F
}

// isBoundary reports whether b should be stripped from a token boundary:
// ASCII control bytes, space, and DEL. Multi-byte UTF-8 content is left
// intact.
func isBoundary(b byte) bool {
	return b < 0x21 || b == 0x7F
}

// TrimToken returns s with non-printable and space bytes removed from both
// ends. The input is never modified; callers always receive an owned slice
// of the original string.
func TrimToken(s string) string {
	start := 0
	for start < len(s) && isBoundary(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isBoundary(s[end-1]) {
		end--
	}
	return s[start:end]
}
