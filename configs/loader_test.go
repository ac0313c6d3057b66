package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
tape_capacity?: int & >0
stack_capacity?: int & >0
stacks?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var n int
	err := loader.AssignFirst("tape_capacity", &n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 30000 {
		t.Fatalf("got %d", n)
	}

	var list []int
	err = loader.AssignFirst("stacks", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("stack_capacity", &n)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var ns []int
	for value, err := range loader.IterCueValues("tape_capacity") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		ns = append(ns, n)
	}
	if str := fmt.Sprintf("%v", ns); str != "[30000 100]" {
		t.Fatalf("got %s", str)
	}

	// later files fill in what earlier ones leave out
	if n := First[int](loader, "stack_capacity"); n != 16 {
		t.Fatalf("got %d", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var n int
	err := loader.AssignFirst("tape_size", &n)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestSchemaConstraint(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
	}, `tape_capacity?: int & <100`)
	var n int
	if err := loader.AssignFirst("tape_capacity", &n); err == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if n := First[int](loader, "tape_capacity"); n != 0 {
		t.Fatalf("got %d", n)
	}
}
