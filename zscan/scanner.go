package zscan

// Scanner turns one assembly source line into a stream of tokens. Each
// parse session owns its Scanner; there is no shared state between
// instances, so independent scans may run concurrently on their own
// scanners.
type Scanner struct {
	buf      []byte
	pos      int
	pushback *tokenStack
	state    scanState
	diag     Diag
}

type scanState uint8

const (
	// normal scanning, the only state for now
	stateInit scanState = iota
)

type tokenStack struct {
	prev *tokenStack
	tok  Token
}

// State is a snapshot of the scanning position, captured with Save and
// reinstated with Restore for speculative parsing.
type State struct {
	pos      int
	pushback *tokenStack
	state    scanState
}

func New(diag Diag) *Scanner {
	if diag == nil {
		diag = Discard
	}
	return &Scanner{
		diag: diag,
	}
}

// Reset binds the scanner to a new source line, dropping any pushed-back
// tokens. Borrowed token slices from the previous line stay valid only as
// long as the caller keeps that buffer alive.
func (s *Scanner) Reset(buf []byte) {
	s.buf = buf
	s.pos = 0
	s.pushback = nil
	s.state = stateInit
}

// Cleanup ends the scan session. Safe to call more than once.
func (s *Scanner) Cleanup() {
	s.Reset(nil)
}

// Tell reports the current read offset in the input buffer.
func (s *Scanner) Tell() int {
	return s.pos
}

func (s *Scanner) Save() State {
	return State{
		pos:      s.pos,
		pushback: s.pushback,
		state:    s.state,
	}
}

func (s *Scanner) Restore(state State) {
	s.pos = state.pos
	s.pushback = state.pushback
	s.state = state.state
}

// PushBack returns a token to the front of the stream; the next call to
// Next yields it unchanged. Pushbacks nest to any depth, last in first
// out.
func (s *Scanner) PushBack(tok Token) {
	s.pushback = &tokenStack{
		prev: s.pushback,
		tok:  tok,
	}
}

func (s *Scanner) peek(off int) byte {
	if p := s.pos + off; p < len(s.buf) {
		return s.buf[p]
	}
	return 0
}

// Next produces the next token. Malformed input is reported through the
// diagnostic sink and yields an error-kind token; scanning always makes
// progress.
func (s *Scanner) Next() Token {
	if s.pushback != nil {
		tok := s.pushback.tok
		s.pushback = s.pushback.prev
		return tok
	}

	s.pos = skipSpaces(s.buf, s.pos)
	start := s.pos

	if s.pos >= len(s.buf) {
		return Token{Kind: EOS, Span: Span{Start: start}}
	}

	tok := s.scan()
	tok.Span = Span{Start: start, Len: s.pos - start}
	return tok
}

func (s *Scanner) scan() Token {
	c := s.buf[s.pos]

	switch {
	case isIDStart(c) || (c == '$' && isIDStart(s.peek(1))):
		return s.scanIdentifier()

	case c == '$' && !isNumChar(s.peek(1)):
		// a $ with no hex number after it: the current assembly
		// location ($), or the base of the current segment ($$)
		s.pos++
		if s.peek(0) == '$' {
			s.pos++
			return Token{Kind: Base}
		}
		return Token{Kind: Here}

	case isNumStart(c):
		return s.scanNumber()

	case c == '\'' || c == '"' || c == '`':
		return s.scanString(c)

	case c == '{':
		return s.scanBraces()

	case c == ';':
		// comment runs to the end of the line - stay
		return Token{Kind: EOS}
	}

	if kind, n := matchOperator(s.buf[s.pos:]); n > 0 {
		s.pos += n
		return Token{Kind: kind}
	}

	// just an ordinary char
	s.pos++
	return Token{Kind: Char, Char: c}
}

func (s *Scanner) scanIdentifier() Token {
	isSym := false
	if s.buf[s.pos] == '$' {
		isSym = true
		s.pos++
	}

	r := s.pos
	s.pos++
	for isIDChar(s.peek(0)) {
		s.pos++
	}

	n := s.pos - r
	stored := min(n, IDLenMax-1)
	text := string(s.buf[r : r+stored])

	if isSym || n > maxKeywordLen {
		// explicit symbol references and over-long spellings bypass
		// keyword lookup
		return Token{Kind: ID, Text: text}
	}

	kw, ok := Lookup(text)
	if !ok {
		return Token{Kind: ID, Text: text}
	}
	if kw.Flag&FlagWarn != 0 {
		s.diag.Warn(WarnKeyword, "`%s' is not a zasm keyword", text)
	}
	if kw.Flag&FlagBrc != 0 {
		// only meaningful inside braces, plain identifier here
		return Token{Kind: ID, Text: text, Flag: kw.Flag}
	}
	return Token{Kind: kw.Kind, Text: text, Flag: kw.Flag, Int: kw.Val}
}

func (s *Scanner) scanString(quote byte) Token {
	content, end := Unquote(s.buf, s.pos)
	s.pos = end
	tok := Token{Kind: Str, Str: content}
	if s.peek(0) != quote {
		tok.Kind = ErrStr
		return tok
	}
	s.pos++
	return tok
}

var operators = []struct {
	text string
	kind Kind
}{
	{">>>", Sar},
	{">>", Shr},
	{"<<<", Shl},
	{"<<", Shl},
	{"//", SDiv},
	{"%%", SMod},
	{"==", Eq},
	{"<>", Ne},
	{"!=", Ne},
	{"<=>", Leg},
	{"<=", Le},
	{">=", Ge},
	{"&&", AndAnd},
	{"^^", XorXor},
	{"||", OrOr},
}

func matchOperator(buf []byte) (Kind, int) {
	for _, op := range operators {
		if len(buf) < len(op.text) {
			continue
		}
		if string(buf[:len(op.text)]) == op.text {
			return op.kind, len(op.text)
		}
	}
	return Invalid, 0
}
