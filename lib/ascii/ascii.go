package ascii

const (
	HT  byte = '\t'
	LF  byte = '\n'
	VT  byte = 0x0B
	FF  byte = 0x0C
	CR  byte = '\r'
	SP  byte = ' '
	DEL byte = 0x7F

	MaxASCII byte = 0x7F
)

// IsWhitespace reports whether c is ASCII whitespace as most libraries
// define it: HT, LF, FF, CR or SP. VT is not included.
//
// Reference: https://infra.spec.whatwg.org/#ascii-whitespace
func IsWhitespace(c byte) bool {
	switch c {
	case HT, LF, FF, CR, SP:
		return true
	}
	return false
}

func IsASCII(c byte) bool { return c <= MaxASCII }
