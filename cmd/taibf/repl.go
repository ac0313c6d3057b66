package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/taitape"
)

var replFlag = new(bool)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		*replFlag = true
	}).Desc("read programs line by line, continuing on the machine of preceding programs"))
}

// EvalLine handles one REPL line on vm. Lines starting with ':' are
// commands: :reset, :dump and :quit. It reports whether to stop.
type EvalLine func(ctx context.Context, vm *taitape.VM, n int, line string, stdout io.Writer) (quit bool)

func (Module) EvalLine(
	run runs.Run,
) EvalLine {
	return func(ctx context.Context, vm *taitape.VM, n int, line string, stdout io.Writer) bool {
		line = strings.TrimSpace(line)
		switch line {
		case "":
			return false
		case ":quit":
			return true
		case ":reset":
			vm.Reset()
			return false
		case ":dump":
			vm.Dump(stdout)
			fmt.Fprintln(stdout)
			return false
		}

		src := sources.Inline(line)
		src.Name = fmt.Sprintf("repl:%d", n)
		result := run(ctx, vm, src)
		if result.Err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", result.Err)
		} else if result.Output != "" {
			fmt.Fprintln(stdout, result.Output)
		}
		return false
	}
}

// REPL reads one program per line and runs it on vm. A nil vm means a new
// machine restored from the state file.
type REPL func(ctx context.Context, vm *taitape.VM, stdout io.Writer) int

func (Module) REPL(
	newVM runs.NewVM,
	evalLine EvalLine,
	loadState runs.LoadState,
	saveState runs.SaveState,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context, vm *taitape.VM, stdout io.Writer) int {
		if vm == nil {
			vm = newVM()
			if err := loadState(ctx, vm); err != nil {
				logger.ErrorContext(ctx, "load state", "error", err)
				return 1
			}
		}

		config := &readline.Config{
			Prompt: "bf> ",
		}
		if dir, err := os.UserCacheDir(); err == nil {
			config.HistoryFile = filepath.Join(dir, "taibf_history")
		}
		rl, err := readline.NewEx(config)
		if err != nil {
			logger.ErrorContext(ctx, "readline", "error", err)
			return 1
		}
		defer rl.Close()

		for n := 1; ; n++ {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			} else if err != nil {
				// io.EOF
				break
			}
			if evalLine(ctx, vm, n, line, stdout) {
				break
			}
		}

		if err := saveState(ctx, vm); err != nil {
			logger.ErrorContext(ctx, "save state", "error", err)
			return 1
		}
		return 0
	}
}
