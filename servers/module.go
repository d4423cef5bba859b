package servers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/runners"
)

type Module struct {
	dscope.Module
	Runners runners.Module
}
