package tapeconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// StateFile is where a machine snapshot is kept between runs. Empty means
// no persistence.
type StateFile string

var stateFileFlag = cmds.Var[string]("-state", "keep the machine in this file between runs")

func (Module) StateFile(
	loader configs.Loader,
) StateFile {
	return StateFile(vars.FirstNonZero(
		*stateFileFlag,
		configs.First[string](loader, "state_file"),
	))
}
