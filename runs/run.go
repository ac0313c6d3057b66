package runs

import (
	"context"
	"time"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/tapeconfigs"
	"github.com/reusee/taibf/taitape"
)

type NewVM func() *taitape.VM

func (Module) NewVM(
	tapeCapacity tapeconfigs.TapeCapacity,
	stackCapacity tapeconfigs.StackCapacity,
) NewVM {
	return func() *taitape.VM {
		return taitape.NewVM(int(tapeCapacity), int(stackCapacity))
	}
}

type Result struct {
	Source   sources.Source
	VM       *taitape.VM
	Output   string
	Err      error
	Duration time.Duration
}

// Run interprets one source on vm. It does not return until the program
// ends; ctx only carries the log span.
type Run func(ctx context.Context, vm *taitape.VM, src sources.Source) Result

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, vm *taitape.VM, src sources.Source) Result {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "run",
			"source", src.Name,
			"bytes", len(src.Text),
		)

		start := time.Now()
		output, err := vm.Interpret(src.Text)
		result := Result{
			Source:   src,
			VM:       vm,
			Output:   output,
			Err:      err,
			Duration: time.Since(start),
		}

		if err != nil {
			logger.DebugContext(ctx, "run failed",
				"source", src.Name,
				"error", err,
				"duration", result.Duration,
			)
		} else {
			logger.DebugContext(ctx, "run done",
				"source", src.Name,
				"output", len(output),
				"duration", result.Duration,
			)
		}
		return result
	}
}
