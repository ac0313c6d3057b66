package runs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/tapeconfigs"
	"github.com/reusee/taibf/taitape"
)

const helloWorld = "++++++++++[>+++++++>++++++++++>+++>+<<<<-]>++.>+.+++++++..+++.>++." +
	"<<+++++++++++++++.>.+++.------.--------.>+.>."

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		append([]any{
			func() configs.Loader {
				return configs.NewLoader(nil, tapeconfigs.Schema)
			},
		}, defs...)...,
	)
}

func TestNewVM(t *testing.T) {
	newScope(t,
		func() tapeconfigs.TapeCapacity {
			return 3
		},
		func() tapeconfigs.StackCapacity {
			return 1
		},
	).Call(func(
		newVM NewVM,
	) {
		vm := newVM()
		if vm.TapeCapacity() != 3 || vm.StackCapacity() != 1 {
			t.Fatalf("got %d %d", vm.TapeCapacity(), vm.StackCapacity())
		}
		if newVM() == vm {
			t.Fatal("should not share machines")
		}
	})
}

func TestRun(t *testing.T) {
	newScope(t).Call(func(
		newVM NewVM,
		run Run,
	) {
		vm := newVM()
		result := run(t.Context(), vm, sources.Inline(helloWorld))
		if result.Err != nil {
			t.Fatal(result.Err)
		}
		if result.Output != "Hello World!\n" {
			t.Fatalf("got %q", result.Output)
		}

		result = run(t.Context(), vm.Reset(), sources.Inline("<"))
		if !errors.Is(result.Err, taitape.CursorUnderflow) {
			t.Fatalf("got %v", result.Err)
		}
	})
}

func TestBatch(t *testing.T) {
	newScope(t,
		func() tapeconfigs.MaxParallel {
			return 2
		},
	).Call(func(
		batch Batch,
	) {
		var srcs []sources.Source
		for i := range 10 {
			srcs = append(srcs, sources.Inline(strings.Repeat("+", 'a'+i)+"."))
		}
		srcs = append(srcs, sources.Inline("]"))

		results := batch(t.Context(), srcs)
		if len(results) != len(srcs) {
			t.Fatalf("got %d results", len(results))
		}
		for i := range 10 {
			if results[i].Err != nil {
				t.Fatal(results[i].Err)
			}
			// every program starts on a fresh machine
			if expected := string(rune('a' + i)); results[i].Output != expected {
				t.Fatalf("%d: got %q", i, results[i].Output)
			}
		}
		if !errors.Is(results[10].Err, taitape.UnmatchedBracket) {
			t.Fatalf("got %v", results[10].Err)
		}
	})
}

func TestBatchCanceled(t *testing.T) {
	newScope(t).Call(func(
		batch Batch,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		results := batch(ctx, []sources.Source{
			sources.Inline("+."),
			sources.Inline("++."),
		})
		for _, result := range results {
			if !errors.Is(result.Err, context.Canceled) {
				t.Fatalf("got %v", result.Err)
			}
		}
	})
}

func TestState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.gob")
	scope := newScope(t,
		func() tapeconfigs.StateFile {
			return tapeconfigs.StateFile(path)
		},
	)

	scope.Call(func(
		newVM NewVM,
		load LoadState,
		save SaveState,
	) {
		vm := newVM()
		// missing file
		if err := load(t.Context(), vm); err != nil {
			t.Fatal(err)
		}
		if _, err := vm.Interpret("+++>++"); err != nil {
			t.Fatal(err)
		}
		if err := save(t.Context(), vm); err != nil {
			t.Fatal(err)
		}

		vm2 := newVM()
		if err := load(t.Context(), vm2); err != nil {
			t.Fatal(err)
		}
		if vm2.String() != vm.String() {
			t.Fatalf("got %s", vm2)
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Fatalf("got %d files", len(entries))
		}
	})

	scope.Fork(
		func() tapeconfigs.TapeCapacity {
			return 5
		},
	).Call(func(
		newVM NewVM,
		load LoadState,
	) {
		err := load(t.Context(), newVM())
		if !errors.Is(err, taitape.ErrStateMismatch) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestNoStateFile(t *testing.T) {
	newScope(t).Call(func(
		newVM NewVM,
		load LoadState,
		save SaveState,
	) {
		vm := newVM()
		if err := save(t.Context(), vm); err != nil {
			t.Fatal(err)
		}
		if err := load(t.Context(), vm); err != nil {
			t.Fatal(err)
		}
	})
}
