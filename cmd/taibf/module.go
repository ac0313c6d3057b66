package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/sources"
)

type Module struct {
	dscope.Module
	Runs    runs.Module
	Sources sources.Module
	Debugs  debugs.Module
}
