package zscan

// WarnClass names a controllable warning category.
type WarnClass string

const (
	// keyword from another assembler that zasm does not recognize
	WarnKeyword WarnClass = "keyword"
	// numeric constant does not fit in 64 bits
	WarnNumberOverflow WarnClass = "number-overflow"
)

// Diag receives scanner diagnostics. Reporting never alters scanning;
// malformed input still produces a token.
type Diag interface {
	Warn(class WarnClass, format string, args ...any)
	Err(format string, args ...any)
}

type discard struct{}

func (discard) Warn(WarnClass, string, ...any) {}
func (discard) Err(string, ...any)             {}

// Discard drops all diagnostics.
var Discard Diag = discard{}
