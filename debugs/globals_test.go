package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/taibf/taitape"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func execStarlark(t *testing.T, vm *taitape.VM, src string) (starlark.StringDict, error) {
	thread := &starlark.Thread{
		Name: t.Name(),
	}
	return starlark.ExecFileOptions(&syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}, thread, "test.star", src, Globals(vm))
}

func TestGlobals(t *testing.T) {
	vm := taitape.NewVM(5, 2)
	globals, err := execStarlark(t, vm, `
out = run("+++.>++")
before = tape()
c = cursor()
d = depth()
second = cell(1)
state = dump()
reset()
after = tape()
`)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		expected starlark.Value
	}{
		{"out", starlark.String("\x03")},
		{"c", starlark.MakeInt(1)},
		{"d", starlark.MakeInt(0)},
		{"second", starlark.MakeInt(2)},
		{"state", starlark.String("3 [2] 0 0 0 ")},
		{"before", starlark.NewList([]starlark.Value{
			starlark.MakeInt(3), starlark.MakeInt(2), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0),
		})},
		{"after", starlark.NewList([]starlark.Value{
			starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0),
		})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			equal, err := starlark.Equal(globals[tc.name], tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("%s = %v, want %v", tc.name, globals[tc.name], tc.expected)
			}
		})
	}

	if vm.Cursor() != 0 {
		t.Fatalf("got %d", vm.Cursor())
	}
}

func TestGlobalsErrors(t *testing.T) {
	vm := taitape.NewVM(5, 2)
	_, err := execStarlark(t, vm, `run("<")`)
	if !errors.Is(err, taitape.CursorUnderflow) {
		t.Fatalf("got %v", err)
	}

	_, err = execStarlark(t, vm, `cell(5)`)
	if err == nil {
		t.Fatal("should error")
	}
}
