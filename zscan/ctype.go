package zscan

// Byte classification for the scanner. Assembly sources are ASCII; bytes
// outside the table classify as nothing.

const (
	ctSpace uint8 = 1 << iota
	ctIDStart
	ctIDChar
	ctNumStart
	ctNumChar
	ctBrcChar
)

var ctype [256]uint8

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		ctype[c] |= ctIDStart | ctNumChar
		ctype[c+'a'-'A'] |= ctIDStart | ctNumChar
	}
	for c := '0'; c <= '9'; c++ {
		ctype[c] |= ctIDChar | ctNumStart | ctNumChar
	}
	for _, c := range []byte{'_', '.', '?', '@'} {
		ctype[c] |= ctIDStart
	}
	for _, c := range []byte{'$', '#', '~'} {
		ctype[c] |= ctIDChar
	}
	ctype['$'] |= ctNumStart
	ctype['_'] |= ctNumChar
	for _, c := range []byte{' ', '\t', '\v', '\f', '\r', '\n'} {
		ctype[c] |= ctSpace
	}
	for i := range ctype {
		if ctype[i]&ctIDStart != 0 {
			ctype[i] |= ctIDChar
		}
		if ctype[i]&ctIDChar != 0 {
			ctype[i] |= ctBrcChar
		}
	}
	// rounding decorators like rn-sae carry a dash
	ctype['-'] |= ctBrcChar
}

func isIDStart(c byte) bool { return ctype[c]&ctIDStart != 0 }
func isIDChar(c byte) bool  { return ctype[c]&ctIDChar != 0 }
func isNumStart(c byte) bool { return ctype[c]&ctNumStart != 0 }
func isNumChar(c byte) bool { return ctype[c]&ctNumChar != 0 }
func isBrcChar(c byte) bool { return ctype[c]&ctBrcChar != 0 }
func isSpace(c byte) bool   { return ctype[c]&ctSpace != 0 }

func skipSpaces(buf []byte, pos int) int {
	for pos < len(buf) && isSpace(buf[pos]) {
		pos++
	}
	return pos
}
