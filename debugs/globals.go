package debugs

import (
	"fmt"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/taibf/taitape"
	"go.starlark.net/starlark"
)

// Globals exposes vm to starlark code:
//
//	run(source) -> output, fails on machine errors
//	reset()
//	tape() -> list of cell values
//	cell(i) -> value of cell i
//	cursor(), depth() -> int
//	dump() -> state as printed by the CLI
func Globals(vm *taitape.VM) starlark.StringDict {
	return starlark.StringDict{

		"run": starlark.NewBuiltin("run", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var source string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &source); err != nil {
				return nil, err
			}
			output, err := vm.Interpret(source)
			if err != nil {
				return nil, err
			}
			return starlark.String(output), nil
		}),

		"tape": starlark.NewBuiltin("tape", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			state := vm.State()
			cells := make([]starlark.Value, len(state.Tape))
			for i, cell := range state.Tape {
				cells[i] = starlark.MakeUint(uint(cell))
			}
			return starlark.NewList(cells), nil
		}),

		"cell": starlark.NewBuiltin("cell", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var i int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &i); err != nil {
				return nil, err
			}
			if i < 0 || i >= vm.TapeCapacity() {
				return nil, fmt.Errorf("%s: index %d out of range [0:%d]", fn.Name(), i, vm.TapeCapacity())
			}
			return starlark.MakeUint(uint(vm.Cell(i))), nil
		}),

		"reset": starlarkutil.MakeFunc("reset", func() {
			vm.Reset()
		}),

		"cursor": starlarkutil.MakeFunc("cursor", func() int {
			return vm.Cursor()
		}),

		"depth": starlarkutil.MakeFunc("depth", func() int {
			return vm.Depth()
		}),

		"dump": starlarkutil.MakeFunc("dump", func() string {
			return vm.String()
		}),
	}
}
