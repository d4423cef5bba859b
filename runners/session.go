package runners

import (
	"fmt"

	"github.com/reusee/turing/descs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tmconfigs"
)

// Session runs a machine in increments, keeping the current state and the tact count between runs.
type Session struct {
	machine       *machines.Machine
	state         machines.State
	tacts         int
	mode          machines.Mode
	maxIterations int
}

func NewSession(machine *machines.Machine, initial machines.State, mode machines.Mode, maxIterations int) *Session {
	return &Session{
		machine:       machine,
		state:         initial,
		mode:          mode,
		maxIterations: maxIterations,
	}
}

// OpenSession builds a machine from desc and starts a session with the configured budget.
// With strict set, an incomplete rule table is reported as ErrIncomplete.
type OpenSession func(desc descs.Description) (*Session, error)

func (Module) OpenSession(
	maxIterations tmconfigs.MaxIterations,
	initialState tmconfigs.InitialState,
	trace tmconfigs.Trace,
	strict tmconfigs.Strict,
) OpenSession {
	return func(desc descs.Description) (*Session, error) {
		machine, initial, err := descs.Build(desc)
		if err != nil {
			return nil, err
		}
		if strict {
			if err := machine.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrIncomplete, err)
			}
		}
		if desc.InitialState == "" {
			initial = initialState.State()
		}
		return NewSession(machine, initial, trace.Mode(), int(maxIterations)), nil
	}
}

// Step applies at most one transition.
func (s *Session) Step() (machines.Result, error) {
	return s.run(1)
}

// Go runs until halt or the budget is spent.
func (s *Session) Go() (machines.Result, error) {
	return s.run(s.maxIterations)
}

func (s *Session) run(n int) (machines.Result, error) {
	result, err := s.machine.Run(s.mode, n, s.state)
	if err != nil {
		return result, err
	}
	s.state = result.State
	s.tacts += result.Iterations
	return result, nil
}

func (s *Session) Machine() *machines.Machine {
	return s.machine
}

func (s *Session) State() machines.State {
	return s.state
}

func (s *Session) Tacts() int {
	return s.tacts
}

func (s *Session) Halted() bool {
	return s.state.IsHalt()
}
