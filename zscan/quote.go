package zscan

// Unquote processes the quoted string whose opening quote sits at
// buf[pos]. It returns the string content and the index of the logical
// closing quote; the caller checks that the byte there matches the
// opening quote. Single and double quotes take their content verbatim.
// Backquoted strings support C-style escapes, decoded in place, so the
// returned content always aliases buf.
func Unquote(buf []byte, pos int) (content []byte, end int) {
	quote := buf[pos]
	r := pos + 1

	if quote != '`' {
		for r < len(buf) && buf[r] != quote {
			r++
		}
		return buf[pos+1 : r], r
	}

	w := pos + 1
	for r < len(buf) && buf[r] != '`' {
		if buf[r] != '\\' {
			buf[w] = buf[r]
			w++
			r++
			continue
		}
		r++
		if r >= len(buf) {
			buf[w] = '\\'
			w++
			break
		}
		c := buf[r]
		r++
		switch c {
		case 'a':
			buf[w] = 7
			w++
		case 'b':
			buf[w] = 8
			w++
		case 'e':
			buf[w] = 27
			w++
		case 'f':
			buf[w] = 12
			w++
		case 'n':
			buf[w] = 10
			w++
		case 'r':
			buf[w] = 13
			w++
		case 't':
			buf[w] = 9
			w++
		case 'v':
			buf[w] = 11
			w++
		case 'x':
			v, n := hexDigits(buf[r:], 2)
			r += n
			buf[w] = byte(v)
			w++
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int(c - '0')
			for k := 0; k < 2 && r < len(buf) && buf[r] >= '0' && buf[r] <= '7'; k++ {
				v = v<<3 | int(buf[r]-'0')
				r++
			}
			buf[w] = byte(v)
			w++
		case 'u':
			v, n := hexDigits(buf[r:], 4)
			r += n
			w += putRune(buf[w:], v)
		case 'U':
			v, n := hexDigits(buf[r:], 8)
			r += n
			w += putRune(buf[w:], v)
		default:
			// unknown escape yields the character itself
			buf[w] = c
			w++
		}
	}
	return buf[pos+1 : w], r
}

func hexDigits(buf []byte, max int) (value int, n int) {
	for n < max && n < len(buf) {
		d := digitValue(buf[n])
		if d < 0 || d >= 16 {
			break
		}
		value = value<<4 | d
		n++
	}
	return
}

// putRune writes the UTF-8 encoding of r into buf. Escape decoding only
// shrinks text, so buf always has room.
func putRune(buf []byte, r int) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = byte(0xc0 | r>>6)
		buf[1] = byte(0x80 | r&0x3f)
		return 2
	case r < 0x10000:
		buf[0] = byte(0xe0 | r>>12)
		buf[1] = byte(0x80 | r>>6&0x3f)
		buf[2] = byte(0x80 | r&0x3f)
		return 3
	default:
		buf[0] = byte(0xf0 | r>>18)
		buf[1] = byte(0x80 | r>>12&0x3f)
		buf[2] = byte(0x80 | r>>6&0x3f)
		buf[3] = byte(0x80 | r&0x3f)
		return 4
	}
}
