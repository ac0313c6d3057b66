package main

import (
	"context"
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/sources"
)

type InputKind uint8

const (
	InputInline InputKind = iota + 1
	InputFile
	InputURL
	InputStdin
)

type Input struct {
	Kind InputKind
	Arg  string
}

var inputs []Input

func init() {
	cmds.Define("run", cmds.Func(func(source string) {
		inputs = append(inputs, Input{InputInline, source})
	}).Desc("run an inline program"))
	cmds.Define("file", cmds.Func(func(path string) {
		inputs = append(inputs, Input{InputFile, path})
	}).Desc("run a program file"))
	cmds.Define("url", cmds.Func(func(url string) {
		inputs = append(inputs, Input{InputURL, url})
	}).Desc("run a program fetched over http(s)"))
	cmds.Define("stdin", cmds.Func(func() {
		inputs = append(inputs, Input{InputStdin, ""})
	}).Desc("run a program read from standard input"))
}

type LoadSources func(ctx context.Context, inputs []Input) ([]sources.Source, error)

func (Module) LoadSources(
	readFile sources.ReadFile,
	readStdin sources.ReadStdin,
	fetch sources.Fetch,
) LoadSources {
	return func(ctx context.Context, inputs []Input) (ret []sources.Source, err error) {
		for _, input := range inputs {
			var src sources.Source
			switch input.Kind {
			case InputInline:
				src = sources.Inline(input.Arg)
			case InputFile:
				src, err = readFile(input.Arg)
			case InputURL:
				src, err = fetch(ctx, input.Arg)
			case InputStdin:
				src, err = readStdin()
			default:
				err = fmt.Errorf("unknown input kind %d", input.Kind)
			}
			if err != nil {
				return nil, err
			}
			ret = append(ret, src)
		}
		return
	}
}
