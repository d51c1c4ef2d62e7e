package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestToJournalKey(t *testing.T) {
	for input, expected := range map[string]string{
		"hello":     "HELLO",
		"log.span":  "LOG_SPAN",
		"warnings3": "WARNINGS3",
	} {
		if got := toJournalKey(input); got != expected {
			t.Fatalf("expected %q, got %q", expected, got)
		}
	}
}
