package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}
