package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/descs"
	"github.com/reusee/turing/servers"
)

type Module struct {
	dscope.Module
	Descs   descs.Module
	Servers servers.Module
	Debugs  debugs.Module
}
