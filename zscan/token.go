package zscan

import "fmt"

type Kind uint8

const (
	EOS Kind = iota
	Char
	ID
	Here
	Base
	Num
	ErrNum
	Float
	Str
	ErrStr
	Invalid
	OpmaskMask
	Reg
	Size
	Prefix
	Seg
	Wrt
	Deco
	Shl
	Shr
	Sar
	SDiv
	SMod
	Eq
	Ne
	Le
	Ge
	Leg
	AndAnd
	OrOr
	XorXor
)

var kindNames = [...]string{
	EOS:        "eos",
	Char:       "char",
	ID:         "id",
	Here:       "here",
	Base:       "base",
	Num:        "num",
	ErrNum:     "errnum",
	Float:      "float",
	Str:        "str",
	ErrStr:     "errstr",
	Invalid:    "invalid",
	OpmaskMask: "opmask",
	Reg:        "reg",
	Size:       "size",
	Prefix:     "prefix",
	Seg:        "seg",
	Wrt:        "wrt",
	Deco:       "deco",
	Shl:        "<<",
	Shr:        ">>",
	Sar:        ">>>",
	SDiv:       "//",
	SMod:       "%%",
	Eq:         "==",
	Ne:         "!=",
	Le:         "<=",
	Ge:         ">=",
	Leg:        "<=>",
	AndAnd:     "&&",
	OrOr:       "||",
	XorXor:     "^^",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Flag bits attached to keywords by Lookup.
type Flag uint32

const (
	// non-canonical keyword borrowed from another assembler, warn on use
	FlagWarn Flag = 1 << iota
	// keyword is only meaningful inside braces
	FlagBrc
	// keyword is an optional decorator inside braces
	FlagBrcOpt
)

const FlagBrcAny = FlagBrc | FlagBrcOpt

// Span locates a token in the input buffer.
type Span struct {
	Start int
	Len   int
}

// Token is one lexical unit of an assembly source line.
//
// Text is owned token text for identifiers, floats and brace decorators.
// Str borrows directly into the input buffer for quoted strings; the slice
// is only valid until the next Reset. Int holds the value of Num tokens and
// the keyword value (register number, decorator code, operand size) of
// looked-up keywords. Char holds the raw byte of single-character
// punctuation.
type Token struct {
	Kind Kind
	Char byte
	Text string
	Str  []byte
	Int  int64
	Flag Flag
	Span Span
}

func (t Token) String() string {
	switch t.Kind {
	case Char:
		return fmt.Sprintf("char(%c)", t.Char)
	case Num:
		return fmt.Sprintf("num(%d)", t.Int)
	case Str:
		return fmt.Sprintf("str(%q)", t.Str)
	case ID, Float, Deco:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case Reg, Size, Prefix:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
