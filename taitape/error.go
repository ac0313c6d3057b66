package taitape

import "fmt"

type ErrorKind uint8

const (
	CursorOverflow ErrorKind = iota + 1
	CursorUnderflow
	LoopStackOverflow
	UnmatchedBracket
)

var errorMessages = [...]string{
	CursorOverflow:    "Data pointer beyond range",
	CursorUnderflow:   "Data pointer below range",
	LoopStackOverflow: "Nested loop limit reached",
	UnmatchedBracket:  "Mismatched brackets",
}

func (k ErrorKind) Error() string {
	if int(k) < len(errorMessages) && errorMessages[k] != "" {
		return errorMessages[k]
	}
	return fmt.Sprintf("unknown error kind %d", k)
}

// Error is returned by Interpret. It unwraps to its Kind.
type Error struct {
	Kind ErrorKind
	// byte offset of the failing instruction in the source
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind.Error(), e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
