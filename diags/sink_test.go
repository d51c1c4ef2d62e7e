package diags

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/zasmio/zasm/modes"
	"github.com/zasmio/zasm/zscan"
)

func TestSink(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newSink NewSink,
	) {
		sink := newSink("test.asm")
		sink.SetLine(3)

		scanner := zscan.New(sink)
		scanner.Reset([]byte("mov eax, ptr {bogus}"))
		for {
			if tok := scanner.Next(); tok.Kind == zscan.EOS {
				break
			}
		}

		if sink.WarningCount() != 1 {
			t.Fatalf("got %d warnings", sink.WarningCount())
		}
		if sink.ErrorCount() != 1 {
			t.Fatalf("got %d errors", sink.ErrorCount())
		}
		if !sink.HasErrors() {
			t.Fatal()
		}
	})
}

func TestSinkDisabledClass(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newSink NewSink,
	) {
		sink := newSink("test.asm")
		sink.enabled[zscan.WarnKeyword] = false

		scanner := zscan.New(sink)
		scanner.Reset([]byte("ptr"))
		scanner.Next()

		if sink.WarningCount() != 0 {
			t.Fatalf("got %d warnings", sink.WarningCount())
		}
	})
}
