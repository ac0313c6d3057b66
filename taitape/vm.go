package taitape

import (
	"fmt"
	"strings"
)

const (
	DefaultTapeCapacity  = 100
	DefaultStackCapacity = 10
)

// VM is a tape machine with a fixed-size tape of byte cells, a single cursor
// and a fixed-size stack of loop addresses.
//
// Tape, cursor and loop stack persist across Interpret calls until Reset.
// A VM must not be used from multiple goroutines at the same time.
type VM struct {
	tape   []byte
	cursor int
	stack  []int
	depth  int
}

func NewVM(tapeCapacity, stackCapacity int) *VM {
	if tapeCapacity < 1 {
		panic(fmt.Errorf("tape capacity must be positive, got %d", tapeCapacity))
	}
	if stackCapacity < 0 {
		panic(fmt.Errorf("stack capacity must not be negative, got %d", stackCapacity))
	}
	return &VM{
		tape:  make([]byte, tapeCapacity),
		stack: make([]int, stackCapacity),
	}
}

// Interpret executes source and returns what it printed.
//
// Bytes other than + - > < . [ ] are ignored. Execution stops at the first
// error; state changed before the failing instruction is kept.
func (v *VM) Interpret(source string) (string, error) {
	var output strings.Builder
	for ip := 0; ip < len(source); {
		switch source[ip] {

		case '+':
			v.tape[v.cursor]++

		case '-':
			v.tape[v.cursor]--

		case '>':
			if v.cursor == len(v.tape)-1 {
				return "", &Error{Kind: CursorOverflow, Offset: ip}
			}
			v.cursor++

		case '<':
			if v.cursor == 0 {
				return "", &Error{Kind: CursorUnderflow, Offset: ip}
			}
			v.cursor--

		case '.':
			output.WriteRune(rune(v.tape[v.cursor]))

		case '[':
			if v.depth == len(v.stack) {
				return "", &Error{Kind: LoopStackOverflow, Offset: ip}
			}
			v.stack[v.depth] = ip
			v.depth++

		case ']':
			if v.depth == 0 {
				return "", &Error{Kind: UnmatchedBracket, Offset: ip}
			}
			if v.tape[v.cursor] != 0 {
				// back edge, the entry stays for the next iteration
				ip = v.stack[v.depth-1] + 1
				continue
			}
			v.depth--

		}
		ip++
	}
	return output.String(), nil
}

// Reset zeroes the tape and the loop stack and returns v.
func (v *VM) Reset() *VM {
	clear(v.tape)
	clear(v.stack)
	v.cursor = 0
	v.depth = 0
	return v
}

func (v *VM) Cursor() int {
	return v.cursor
}

func (v *VM) Depth() int {
	return v.depth
}

// Cell returns the value of tape cell i. It panics if i is out of range.
func (v *VM) Cell(i int) byte {
	return v.tape[i]
}

func (v *VM) TapeCapacity() int {
	return len(v.tape)
}

func (v *VM) StackCapacity() int {
	return len(v.stack)
}
