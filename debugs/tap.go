package debugs

import (
	"context"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taitape"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over vm and returns when it is closed.
type Tap func(ctx context.Context, what string, vm *taitape.VM)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, vm *taitape.VM) {
		logger.InfoContext(ctx, "tap: "+what,
			"cursor", vm.Cursor(),
			"depth", vm.Depth(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(vm))
	}
}
