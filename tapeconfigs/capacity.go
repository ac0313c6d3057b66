package tapeconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/taitape"
	"github.com/reusee/taibf/vars"
)

type TapeCapacity int

type StackCapacity int

var (
	tapeCapacityFlag  int
	stackCapacityFlag int
)

func init() {
	cmds.Define("-tape-size", cmds.Func(func(n int) error {
		if n < 1 {
			return fmt.Errorf("tape size must be positive, got %d", n)
		}
		tapeCapacityFlag = n
		return nil
	}).Desc("number of tape cells"))

	cmds.Define("-stack-size", cmds.Func(func(n int) error {
		if n < 1 {
			return fmt.Errorf("stack size must be positive, got %d", n)
		}
		stackCapacityFlag = n
		return nil
	}).Desc("maximum loop nesting depth"))
}

func (Module) TapeCapacity(
	loader configs.Loader,
) TapeCapacity {
	return TapeCapacity(vars.FirstNonZero(
		tapeCapacityFlag,
		configs.First[int](loader, "tape_capacity"),
		taitape.DefaultTapeCapacity,
	))
}

func (Module) StackCapacity(
	loader configs.Loader,
) StackCapacity {
	return StackCapacity(vars.FirstNonZero(
		stackCapacityFlag,
		configs.First[int](loader, "stack_capacity"),
		taitape.DefaultStackCapacity,
	))
}
