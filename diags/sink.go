package diags

import (
	"fmt"

	"github.com/zasmio/zasm/logs"
	"github.com/zasmio/zasm/zasmconfigs"
	"github.com/zasmio/zasm/zscan"
)

// Sink collects scanner diagnostics: warnings are filtered by class and
// counted, errors are always reported. One Sink serves one scan session.
type Sink struct {
	logger    logs.Logger
	enabled   map[zscan.WarnClass]bool
	source    string
	line      int
	warnCount int
	errCount  int
}

var _ zscan.Diag = new(Sink)

type NewSink func(source string) *Sink

func (Module) NewSink(
	logger logs.Logger,
	warnings zasmconfigs.Warnings,
) NewSink {
	enabled := make(map[zscan.WarnClass]bool)
	for name, on := range warnings {
		enabled[zscan.WarnClass(name)] = on
	}
	return func(source string) *Sink {
		return &Sink{
			logger:  logger,
			enabled: enabled,
			source:  source,
		}
	}
}

// SetLine tells the sink which source line is being scanned, for
// diagnostics locations.
func (s *Sink) SetLine(line int) {
	s.line = line
}

func (s *Sink) Warn(class zscan.WarnClass, format string, args ...any) {
	if on, ok := s.enabled[class]; ok && !on {
		return
	}
	s.warnCount++
	s.logger.Warn(fmt.Sprintf(format, args...),
		"source", s.source,
		"line", s.line,
		"class", string(class),
	)
}

func (s *Sink) Err(format string, args ...any) {
	s.errCount++
	s.logger.Error(fmt.Sprintf(format, args...),
		"source", s.source,
		"line", s.line,
	)
}

func (s *Sink) WarningCount() int {
	return s.warnCount
}

func (s *Sink) ErrorCount() int {
	return s.errCount
}

func (s *Sink) HasErrors() bool {
	return s.errCount > 0
}
