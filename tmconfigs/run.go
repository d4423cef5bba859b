package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/vars"
)

// MaxIterations bounds the transitions of one run.
// Zero from a flag or a file means unset.
type MaxIterations int

var _ configs.Configurable = MaxIterations(0)

func (MaxIterations) ConfigExpr() string {
	return "max_iterations"
}

var maxIterationsFlag = cmds.Var[int]("-max-iterations")

func (Module) MaxIterations(
	loader configs.Loader,
) MaxIterations {
	return MaxIterations(vars.FirstNonZero(
		*maxIterationsFlag,
		int(configs.FirstOf[MaxIterations](loader)),
		machines.DefaultMaxIterations,
	))
}

type InitialState string

var _ configs.Configurable = InitialState("")

func (InitialState) ConfigExpr() string {
	return "initial_state"
}

var initialStateFlag = cmds.Var[string]("-initial-state")

func (Module) InitialState(
	loader configs.Loader,
) InitialState {
	return vars.FirstNonZero(
		InitialState(*initialStateFlag),
		configs.FirstOf[InitialState](loader),
		machines.DefaultInitialState,
	)
}

func (i InitialState) State() machines.State {
	return machines.ParseState(string(i))
}

// Trace selects machines.ModeByStep.
type Trace bool

var _ configs.Configurable = Trace(false)

func (Trace) ConfigExpr() string {
	return "trace"
}

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag) || configs.FirstOf[Trace](loader)
}

func (t Trace) Mode() machines.Mode {
	if t {
		return machines.ModeByStep
	}
	return machines.ModeNormal
}

// Strict validates rule tables before running.
type Strict bool

var _ configs.Configurable = Strict(false)

func (Strict) ConfigExpr() string {
	return "strict"
}

var strictFlag = cmds.Switch("-strict")

func (Module) Strict(
	loader configs.Loader,
) Strict {
	return Strict(*strictFlag) || configs.FirstOf[Strict](loader)
}
