package taitape

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

var ErrStateMismatch = errors.New("state does not fit this machine")

// State is a copy of a machine's tape, cursor and loop stack.
type State struct {
	Tape   []byte
	Cursor int
	Stack  []int
	Depth  int
}

func (v *VM) State() State {
	return State{
		Tape:   slices.Clone(v.tape),
		Cursor: v.cursor,
		Stack:  slices.Clone(v.stack),
		Depth:  v.depth,
	}
}

func (v *VM) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(v.State())
}

// Restore installs a state written by Snapshot. Capacities must match; v is
// unchanged on error.
func (v *VM) Restore(r io.Reader) error {
	var state State
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return err
	}
	if err := v.check(state); err != nil {
		return err
	}
	copy(v.tape, state.Tape)
	clear(v.stack)
	copy(v.stack, state.Stack)
	v.cursor = state.Cursor
	v.depth = state.Depth
	return nil
}

func (v *VM) check(state State) error {
	if len(state.Tape) != len(v.tape) {
		return fmt.Errorf("%w: tape capacity %d, want %d", ErrStateMismatch, len(state.Tape), len(v.tape))
	}
	if len(state.Stack) != len(v.stack) {
		return fmt.Errorf("%w: stack capacity %d, want %d", ErrStateMismatch, len(state.Stack), len(v.stack))
	}
	if state.Cursor < 0 || state.Cursor >= len(v.tape) {
		return fmt.Errorf("%w: cursor %d", ErrStateMismatch, state.Cursor)
	}
	if state.Depth < 0 || state.Depth > len(v.stack) {
		return fmt.Errorf("%w: depth %d", ErrStateMismatch, state.Depth)
	}
	for i, offset := range state.Stack[:state.Depth] {
		if offset < 0 {
			return fmt.Errorf("%w: loop offset %d at %d", ErrStateMismatch, offset, i)
		}
	}
	return nil
}

// Dump writes every cell followed by a space, the cell under the cursor in
// brackets.
func (v *VM) Dump(w io.Writer) error {
	_, err := io.WriteString(w, v.String())
	return err
}

func (v *VM) String() string {
	var b strings.Builder
	for i, cell := range v.tape {
		if i == v.cursor {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(int(cell)))
			b.WriteString("] ")
			continue
		}
		b.WriteString(strconv.Itoa(int(cell)))
		b.WriteByte(' ')
	}
	return b.String()
}
