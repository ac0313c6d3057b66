package runs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/tapeconfigs"
	"github.com/reusee/taibf/taitape"
)

// LoadState restores vm from the state file. A missing file leaves vm as is.
type LoadState func(ctx context.Context, vm *taitape.VM) error

func (Module) LoadState(
	stateFile tapeconfigs.StateFile,
	logger logs.Logger,
) LoadState {
	return func(ctx context.Context, vm *taitape.VM) error {
		if stateFile == "" {
			return nil
		}
		f, err := os.Open(string(stateFile))
		if errors.Is(err, fs.ErrNotExist) {
			logger.DebugContext(ctx, "no state file", "path", stateFile)
			return nil
		} else if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		defer f.Close()
		if err := vm.Restore(f); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "state loaded",
			"path", stateFile,
			"cursor", vm.Cursor(),
			"depth", vm.Depth(),
		)
		return nil
	}
}

// SaveState writes vm to the state file, replacing it atomically.
type SaveState func(ctx context.Context, vm *taitape.VM) error

func (Module) SaveState(
	stateFile tapeconfigs.StateFile,
	logger logs.Logger,
) SaveState {
	return func(ctx context.Context, vm *taitape.VM) (err error) {
		if stateFile == "" {
			return nil
		}
		path := string(stateFile)
		tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		defer func() {
			if err != nil {
				os.Remove(tmp.Name())
			}
		}()
		if err := vm.Snapshot(tmp); err != nil {
			tmp.Close()
			return logs.WrapSpan(ctx, err)
		}
		if err := tmp.Close(); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if err := os.Rename(tmp.Name(), path); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "state saved", "path", path)
		return nil
	}
}
