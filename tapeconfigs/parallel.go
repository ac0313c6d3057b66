package tapeconfigs

import (
	"runtime"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// MaxParallel bounds the number of programs a batch runs at once.
type MaxParallel int

var maxParallelFlag = cmds.Var[int]("-parallel", "max programs run at once in batch mode")

func (Module) MaxParallel(
	loader configs.Loader,
) MaxParallel {
	return MaxParallel(max(1, vars.FirstNonZero(
		*maxParallelFlag,
		configs.First[int](loader, "max_parallel"),
		runtime.NumCPU(),
	)))
}
