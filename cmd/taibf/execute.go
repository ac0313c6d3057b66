package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/tapeconfigs"
	"github.com/reusee/taibf/taitape"
)

type Options struct {
	// print the machine after each program
	Dump bool
	// one machine per program, run concurrently
	Batch bool
	// open a starlark REPL on the machine after the programs
	Tap bool
}

var (
	dumpFlag  = cmds.Switch("-dump", "print the tape after each program")
	batchFlag = cmds.Switch("-batch", "run each program on its own machine, concurrently")
	tapFlag   = cmds.Switch("-tap", "open a starlark repl on the machine after running")
)

func (Module) Options() Options {
	return Options{
		Dump:  *dumpFlag,
		Batch: *batchFlag,
		Tap:   *tapFlag,
	}
}

// Execute runs inputs and writes what they print to stdout. It returns the
// process exit code. Sequential runs use vm, or a new machine if vm is nil.
type Execute func(ctx context.Context, vm *taitape.VM, inputs []Input, stdout io.Writer) int

func (Module) Execute(
	options Options,
	loadSources LoadSources,
	newVM runs.NewVM,
	run runs.Run,
	batch runs.Batch,
	loadState runs.LoadState,
	saveState runs.SaveState,
	tap debugs.Tap,
	stateFile tapeconfigs.StateFile,
	logger logs.Logger,
) Execute {

	report := func(stdout io.Writer, result runs.Result) bool {
		if result.Err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", result.Err)
		} else {
			io.WriteString(stdout, result.Output)
		}
		if options.Dump && result.VM != nil {
			if result.Err == nil && result.Output != "" {
				fmt.Fprintln(stdout)
			}
			result.VM.Dump(stdout)
			fmt.Fprintln(stdout)
		}
		return result.Err == nil
	}

	return func(ctx context.Context, vm *taitape.VM, inputs []Input, stdout io.Writer) int {
		srcs, err := loadSources(ctx, inputs)
		if err != nil {
			logger.ErrorContext(ctx, "load sources", "error", err)
			return 1
		}

		if options.Batch {
			// batch machines are discarded
			if stateFile != "" {
				logger.WarnContext(ctx, "state file ignored in batch mode", "path", stateFile)
			}
			if options.Tap {
				logger.WarnContext(ctx, "tap ignored in batch mode")
			}
			code := 0
			for _, result := range batch(ctx, srcs) {
				if !report(stdout, result) {
					code = 1
				}
			}
			return code
		}

		// programs share one machine and stop at the first failure
		if vm == nil {
			vm = newVM()
		}
		if err := loadState(ctx, vm); err != nil {
			logger.ErrorContext(ctx, "load state", "error", err)
			return 1
		}
		code := 0
		for _, src := range srcs {
			if !report(stdout, run(ctx, vm, src)) {
				code = 1
				break
			}
		}
		if err := saveState(ctx, vm); err != nil {
			logger.ErrorContext(ctx, "save state", "error", err)
			code = 1
		}

		if options.Tap {
			tap(ctx, "after run", vm)
		}

		return code
	}
}
