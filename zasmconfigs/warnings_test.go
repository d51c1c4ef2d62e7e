package zasmconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/zasmio/zasm/cmds"
	"github.com/zasmio/zasm/modes"
)

func TestWarnings(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-w", "-keyword",
		"-w", "+number-overflow",
	})
	defer func() {
		*warnFlags = nil
	}()

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		warnings Warnings,
	) {
		if enabled, ok := warnings["keyword"]; !ok || enabled {
			t.Fatalf("got %v", warnings)
		}
		if enabled, ok := warnings["number-overflow"]; !ok || !enabled {
			t.Fatalf("got %v", warnings)
		}
	})
}
