package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/zasmio/zasm/cmds"
	"github.com/zasmio/zasm/debugs"
	"github.com/zasmio/zasm/diags"
	"github.com/zasmio/zasm/logs"
	"github.com/zasmio/zasm/modes"
	"github.com/zasmio/zasm/syncs"
	"github.com/zasmio/zasm/zscan"
)

type Module struct {
	dscope.Module
	Diags  diags.Module
	Debugs debugs.Module
}

var (
	files   = cmds.Collect[string]("-f")
	tapFlag = cmds.Switch("-tap")
	numJobs = cmds.Var[int]("-j")
)

var pt = fmt.Fprintf

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSink diags.NewSink,
		tap debugs.Tap,
	) {

		if *tapFlag {
			tap(ctx, "scanner", map[string]any{
				"tokenize": func(src string) []string {
					scanner := zscan.New(zscan.Discard)
					scanner.Reset([]byte(src))
					var ret []string
					for {
						tok := scanner.Next()
						if tok.Kind == zscan.EOS {
							return ret
						}
						ret = append(ret, tok.String())
					}
				},
			})
			return
		}

		if len(*files) == 0 {
			sink := newSink("<stdin>")
			var output bytes.Buffer
			if err := scanLines(os.Stdin, sink, &output); err != nil {
				logger.ErrorContext(ctx, "scan",
					"source", "<stdin>",
					"error", err,
				)
				os.Exit(1)
			}
			os.Stdout.Write(output.Bytes())
			if sink.HasErrors() {
				os.Exit(1)
			}
			return
		}

		// each file gets its own scanner session, so files scan in
		// parallel
		jobs := max(*numJobs, 1)
		semaphore := syncs.NewSemaphore(jobs)
		var wg sync.WaitGroup
		outputs := make([]bytes.Buffer, len(*files))
		errs := make([]error, len(*files))
		sinks := make([]*diags.Sink, len(*files))

		for i, path := range *files {
			sinks[i] = newSink(path)
			wg.Add(1)
			go func() {
				defer wg.Done()
				semaphore.Acquire()
				defer semaphore.Release()
				errs[i] = scanFile(path, sinks[i], &outputs[i])
			}()
		}
		wg.Wait()

		exitCode := 0
		for i, path := range *files {
			if errs[i] != nil {
				logger.ErrorContext(ctx, "scan",
					"path", path,
					"error", errs[i],
				)
				exitCode = 1
				continue
			}
			os.Stdout.Write(outputs[i].Bytes())
			logger.InfoContext(ctx, "scanned",
				"path", path,
				"warnings", sinks[i].WarningCount(),
				"errors", sinks[i].ErrorCount(),
			)
			if sinks[i].HasErrors() {
				exitCode = 1
			}
		}
		os.Exit(exitCode)
	})
}

func scanFile(path string, sink *diags.Sink, output *bytes.Buffer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scanLines(f, sink, output)
}

func scanLines(r io.Reader, sink *diags.Sink, output *bytes.Buffer) error {
	scanner := zscan.New(sink)
	defer scanner.Cleanup()

	lines := bufio.NewScanner(r)
	for n := 1; lines.Scan(); n++ {
		sink.SetLine(n)
		scanner.Reset(lines.Bytes())
		for {
			tok := scanner.Next()
			if tok.Kind == zscan.EOS {
				break
			}
			pt(output, "%d:%d\t%s\n", n, tok.Span.Start, tok)
		}
	}
	return lines.Err()
}
