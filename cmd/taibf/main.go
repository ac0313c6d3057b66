package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/taitape"
)

func main() {
	cmds.Execute(os.Args[1:])

	if len(inputs) == 0 && !*replFlag {
		fmt.Fprintln(os.Stderr, "nothing to run")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	code := 0
	scope.Call(func(
		options Options,
		newVM runs.NewVM,
		execute Execute,
		repl REPL,
	) {
		ctx := context.Background()
		// the repl continues on the machine of sequential runs
		var vm *taitape.VM
		if len(inputs) > 0 {
			if !options.Batch {
				vm = newVM()
			}
			code = execute(ctx, vm, inputs, os.Stdout)
		}
		if code == 0 && *replFlag {
			code = repl(ctx, vm, os.Stdout)
		}
	})
	os.Exit(code)
}
