package zscan

// scanBraces parses a {decorator} annotation. Decorators live in the
// keyword namespace but with their own validity rules; rounding modes
// such as rn-sae carry a dash, which brace content permits.
func (s *Scanner) scanBraces() Token {
	s.pos++ // skip {
	s.pos = skipSpaces(s.buf, s.pos)
	r := s.pos

	for isBrcChar(s.peek(0)) {
		s.pos++
	}
	n := s.pos - r

	var text string
	if n <= maxKeywordLen {
		text = string(s.buf[r : r+n])
	}

	s.pos = skipSpaces(s.buf, s.pos)
	if s.peek(0) != '}' {
		s.diag.Err("unterminated braces at end of line")
		return Token{Kind: Invalid, Text: text}
	}
	s.pos++ // skip closing brace

	if n > maxKeywordLen {
		s.diag.Err("`{%s}' is not a valid token", s.buf[r:r+n])
		return Token{Kind: Invalid}
	}

	kw, _ := Lookup(text)
	return s.classifyBrace(text, kw)
}

// classifyBrace retags a looked-up token found inside braces. Keywords
// with no brace validity at all are rejected; an opmask register inside
// braces is used as a mask.
func (s *Scanner) classifyBrace(text string, kw Keyword) Token {
	tok := Token{Kind: kw.Kind, Text: text, Flag: kw.Flag, Int: kw.Val}
	if kw.Flag&FlagBrcAny == 0 {
		s.diag.Err("`{%s}' is not a valid token", text)
		tok.Kind = Invalid
	} else if kw.Flag&FlagBrcOpt != 0 {
		if kw.Kind == Reg && IsRegClass(RegClassOpmask, kw.Val) {
			tok.Kind = OpmaskMask
		}
	}
	return tok
}
