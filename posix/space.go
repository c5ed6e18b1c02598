package posix

import "posix-space/lib/ascii"

// IsSpace reports whether b is in the POSIX space class:
// SP, FF, LF, CR, HT or VT. Every byte >= 0x80 is not a space.
//
// Unlike [ascii.IsWhitespace], VT (0x0B) is a space.
func IsSpace(b byte) bool {
	return ascii.IsWhitespace(b) || b == ascii.VT
}
