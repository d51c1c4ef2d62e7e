package zscan

// scanNumber consumes a numeric literal run and classifies it as integer
// or floating-point. The run is tracked incrementally: a leading $ forces
// hex, h/x anywhere switch to hex, a decimal point or a p exponent force
// float, and an e exponent forces float unless the literal turned out to
// be hex ("1e13" is floating-point, "1e13h" is not).
func (s *Scanner) scanNumber() Token {
	r := s.pos
	isHex := false
	isFloat := false
	hasE := false

	if s.buf[s.pos] == '$' {
		s.pos++
		isHex = true
	}

	for {
		c := s.peek(0)
		s.pos++

		if !isHex && (c == 'e' || c == 'E') {
			hasE = true
			if s.peek(0) == '+' || s.peek(0) == '-' {
				// e can only be followed by +/- in a floating-point
				// number
				isFloat = true
				s.pos++
			}
		} else if c == 'H' || c == 'h' || c == 'X' || c == 'x' {
			isHex = true
		} else if c == 'P' || c == 'p' {
			isFloat = true
			if s.peek(0) == '+' || s.peek(0) == '-' {
				s.pos++
			}
		} else if isNumChar(c) {
			// just advance
		} else if c == '.' {
			isFloat = true
		} else {
			break
		}
	}
	s.pos-- // first character beyond the number

	if hasE && !isHex {
		isFloat = true
	}

	if isFloat {
		// value conversion happens in the evaluator, keep the text
		return Token{Kind: Float, Text: string(s.buf[r:s.pos])}
	}

	value, ok := ReadNum(string(s.buf[r:s.pos]), s.diag)
	if !ok {
		s.diag.Err("invalid numeric constant `%s'", s.buf[r:s.pos])
		return Token{Kind: ErrNum}
	}
	return Token{Kind: Num, Int: value}
}
