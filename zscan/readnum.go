package zscan

// ReadNum converts an integer literal to its value. Radix is given by a
// $ prefix, a 0x/0h/0b/0y/0o/0q/0d/0t prefix, or a trailing radix letter
// (h/x, b/y, o/q, d/t); plain digits are decimal. Underscores separate
// digit groups and are ignored. ok is false when the literal has no valid
// digits for its radix.
func ReadNum(str string, diag Diag) (value int64, ok bool) {
	full := str
	radix := 0

	if len(str) > 0 && str[0] == '$' {
		radix = 16
		str = str[1:]
	}

	if radix == 0 && len(str) > 2 && str[0] == '0' {
		if r := radixLetter(str[1]); r != 0 {
			radix = r
			str = str[2:]
		}
	}
	if radix == 0 && len(str) > 1 {
		if r := radixLetter(str[len(str)-1]); r != 0 {
			radix = r
			str = str[:len(str)-1]
		}
	}
	if radix == 0 {
		radix = 10
	}

	var v uint64
	overflow := false
	seen := false
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == '_' {
			continue
		}
		d := digitValue(c)
		if d < 0 || d >= radix {
			return 0, false
		}
		seen = true
		if v > (^uint64(0)-uint64(d))/uint64(radix) {
			overflow = true
		}
		v = v*uint64(radix) + uint64(d)
	}
	if !seen {
		return 0, false
	}
	if overflow {
		diag.Warn(WarnNumberOverflow, "numeric constant %s does not fit in 64 bits", full)
	}
	return int64(v), true
}

func radixLetter(c byte) int {
	switch c {
	case 'h', 'H', 'x', 'X':
		return 16
	case 'b', 'B', 'y', 'Y':
		return 2
	case 'o', 'O', 'q', 'Q':
		return 8
	case 'd', 'D', 't', 'T':
		return 10
	}
	return 0
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}
