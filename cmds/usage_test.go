package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("file", Func(func(path string) {}).Desc("run a program file"))
	executor.Define("repl", Sub(map[string]*Command{
		":reset": Func(func() {}).Desc("clear the machine"),
	}).Desc("interactive loop"))

	buf := new(bytes.Buffer)
	executor.FprintUsage(buf)
	usage := buf.String()
	for _, expected := range []string{
		"-h, --help, -help, help\tprint this usage",
		"file\trun a program file",
		"repl\tinteractive loop",
		"  :reset\tclear the machine",
	} {
		if !strings.Contains(usage, expected) {
			t.Fatalf("missing %q in %s", expected, usage)
		}
	}
	if strings.Count(usage, "print this usage") != 1 {
		t.Fatalf("aliases printed more than once: %s", usage)
	}
}
