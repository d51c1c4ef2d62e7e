package zscan

import (
	"fmt"
	"strings"
)

// Identifier text longer than this is silently truncated; the input is
// still consumed in full.
const IDLenMax = 4096

// Keyword is the result of a Lookup: the reserved token kind, its flag
// bits, and an auxiliary value (register number, decorator code, operand
// size in bytes).
type Keyword struct {
	Kind Kind
	Flag Flag
	Val  int64
}

type RegClass uint16

const (
	RegClassGPR RegClass = 1 << iota
	RegClassSReg
	RegClassXMM
	RegClassYMM
	RegClassZMM
	RegClassOpmask
)

// Decorator codes, carried in Token.Int for Deco tokens.
const (
	DecoZ int64 = iota
	Deco1to2
	Deco1to4
	Deco1to8
	Deco1to16
	DecoSAE
	DecoRNSAE
	DecoRDSAE
	DecoRUSAE
	DecoRZSAE
	DecoEVEX
	DecoVEX
	DecoVEX2
	DecoVEX3
	DecoREX
)

var (
	keywords      = make(map[string]Keyword)
	regClasses    []RegClass
	maxKeywordLen int
)

func define(name string, kw Keyword) {
	if _, ok := keywords[name]; ok {
		panic(fmt.Errorf("duplicated keyword %s", name))
	}
	keywords[name] = kw
	if len(name) > maxKeywordLen {
		maxKeywordLen = len(name)
	}
}

func defineReg(name string, class RegClass) {
	n := int64(len(regClasses))
	regClasses = append(regClasses, class)
	var flag Flag
	if class == RegClassOpmask {
		// opmask registers double as {k1} mask decorators
		flag = FlagBrcOpt
	}
	define(name, Keyword{Kind: Reg, Flag: flag, Val: n})
}

func defineDeco(name string, code int64, flag Flag) {
	define(name, Keyword{Kind: Deco, Flag: flag, Val: code})
}

func init() {
	for _, name := range []string{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi"} {
		defineReg(name, RegClassGPR)
	}
	for i := 8; i < 16; i++ {
		defineReg(fmt.Sprintf("r%d", i), RegClassGPR)
	}
	for _, name := range []string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi"} {
		defineReg(name, RegClassGPR)
	}
	for i := 8; i < 16; i++ {
		defineReg(fmt.Sprintf("r%dd", i), RegClassGPR)
	}
	for _, name := range []string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"} {
		defineReg(name, RegClassGPR)
	}
	for _, name := range []string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh", "spl", "bpl", "sil", "dil"} {
		defineReg(name, RegClassGPR)
	}
	for _, name := range []string{"es", "cs", "ss", "ds", "fs", "gs"} {
		defineReg(name, RegClassSReg)
	}
	for i := 0; i < 32; i++ {
		defineReg(fmt.Sprintf("xmm%d", i), RegClassXMM)
		defineReg(fmt.Sprintf("ymm%d", i), RegClassYMM)
		defineReg(fmt.Sprintf("zmm%d", i), RegClassZMM)
	}
	for i := 0; i < 8; i++ {
		defineReg(fmt.Sprintf("k%d", i), RegClassOpmask)
	}

	for _, s := range []struct {
		name  string
		bytes int64
	}{
		{"byte", 1}, {"word", 2}, {"dword", 4}, {"qword", 8},
		{"tword", 10}, {"oword", 16}, {"yword", 32}, {"zword", 64},
	} {
		define(s.name, Keyword{Kind: Size, Val: s.bytes})
	}

	define("seg", Keyword{Kind: Seg})
	define("wrt", Keyword{Kind: Wrt})
	for _, name := range []string{"lock", "rep", "repe", "repz", "repne", "repnz"} {
		define(name, Keyword{Kind: Prefix})
	}
	// encoding hints are only meaningful inside braces
	defineDeco("evex", DecoEVEX, FlagBrc)
	defineDeco("vex", DecoVEX, FlagBrc)
	defineDeco("vex2", DecoVEX2, FlagBrc)
	defineDeco("vex3", DecoVEX3, FlagBrc)
	defineDeco("rex", DecoREX, FlagBrc)

	defineDeco("z", DecoZ, FlagBrcOpt)
	defineDeco("1to2", Deco1to2, FlagBrc)
	defineDeco("1to4", Deco1to4, FlagBrc)
	defineDeco("1to8", Deco1to8, FlagBrc)
	defineDeco("1to16", Deco1to16, FlagBrc)
	defineDeco("sae", DecoSAE, FlagBrcOpt)
	defineDeco("rn-sae", DecoRNSAE, FlagBrcOpt)
	defineDeco("rd-sae", DecoRDSAE, FlagBrcOpt)
	defineDeco("ru-sae", DecoRUSAE, FlagBrcOpt)
	defineDeco("rz-sae", DecoRZSAE, FlagBrcOpt)

	// MASM spelling, recognized only to warn about it
	define("ptr", Keyword{Kind: ID, Flag: FlagWarn})
}

// Lookup maps spelled text to its reserved keyword, case-insensitively.
// Unknown spellings report ok == false with a plain identifier keyword.
func Lookup(text string) (Keyword, bool) {
	kw, ok := keywords[strings.ToLower(text)]
	if !ok {
		return Keyword{Kind: ID}, false
	}
	return kw, true
}

// IsRegClass reports whether register number reg belongs to class.
func IsRegClass(class RegClass, reg int64) bool {
	if reg < 0 || reg >= int64(len(regClasses)) {
		return false
	}
	return regClasses[reg]&class != 0
}
