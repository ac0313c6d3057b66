package sources

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var (
	ErrInvalidUTF8 = errors.New("source is not valid UTF-8")
	ErrHTTPStatus  = errors.New("unexpected http status")
)

// Source is a complete program text and where it came from.
type Source struct {
	Name string
	Text string
}

func Inline(text string) Source {
	return Source{
		Name: "<inline>",
		Text: text,
	}
}

func newSource(name string, content []byte) (Source, error) {
	if !utf8.Valid(content) {
		return Source{}, fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}
	return Source{
		Name: name,
		Text: string(content),
	}, nil
}
