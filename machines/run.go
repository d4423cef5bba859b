package machines

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/reusee/turing/tapes"
)

const (
	DefaultMaxIterations = 9999
	DefaultInitialState  = "q0"
)

type Mode int

const (
	// ModeNormal records no steps.
	ModeNormal Mode = iota
	// ModeByStep records every applied transition.
	ModeByStep
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeByStep:
		return "by step"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type Status string

const (
	StatusSuccessful           Status = "successful"
	StatusMaxIterationsReached Status = "max iterations reached"
)

type Step struct {
	CurrState     State        `json:"curr_state"`
	NextState     State        `json:"next_state"`
	CurrCharacter tapes.Symbol `json:"curr_character"`
	NextCharacter tapes.Symbol `json:"next_character"`
	Move          Move         `json:"move"`
	Tact          int          `json:"tact"`
}

type Result struct {
	Status       Status `json:"status"`
	Result       string `json:"result"`
	Iterations   int    `json:"iterations"`
	HeadPosition int    `json:"head_position"`
	// the state the run stopped in, Halt when successful
	State State `json:"state"`
	// nil unless run in ModeByStep
	Steps []Step `json:"steps"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	type result struct {
		Status       Status  `json:"status"`
		Result       string  `json:"result"`
		Iterations   int     `json:"iterations"`
		HeadPosition int     `json:"head_position"`
		State        State   `json:"state"`
		Steps        *[]Step `json:"steps,omitempty"`
	}
	v := result{
		Status:       r.Status,
		Result:       r.Result,
		Iterations:   r.Iterations,
		HeadPosition: r.HeadPosition,
		State:        r.State,
	}
	if r.Steps != nil {
		v.Steps = &r.Steps
	}
	return json.Marshal(v)
}

// Steps applies transitions starting from initial until the halt state is reached
// or maxIterations transitions were applied, yielding one Step per transition.
// The step is yielded after the write and the head move.
// A missing rule yields a *MissingRuleError and ends the sequence.
func (m *Machine) Steps(maxIterations int, initial State) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		state := initial
		for tact := 0; !state.IsHalt() && tact < maxIterations; tact++ {
			read := m.tape.Read(m.position)
			rule, ok := m.rules.Lookup(state, read)
			if !ok {
				yield(Step{}, &MissingRuleError{
					State:     state,
					Symbol:    read,
					Iteration: tact,
				})
				return
			}

			m.tape.Write(m.position, rule.Write)
			step := Step{
				CurrState:     state,
				NextState:     rule.Next,
				CurrCharacter: read,
				NextCharacter: rule.Write,
				Move:          rule.Move,
				Tact:          tact,
			}
			m.position += rule.Move.Delta()
			state = rule.Next

			if !yield(step, nil) {
				return
			}
		}
	}
}

// Run executes the machine from the initial state.
// The head position persists on the machine between calls; the current state does not.
// Reaching the iteration budget is reported by the status, not as an error.
// On a missing rule no result is produced and the machine should be reset before further use.
func (m *Machine) Run(mode Mode, maxIterations int, initial State) (Result, error) {
	state := initial
	iterations := 0
	var steps []Step
	if mode == ModeByStep {
		steps = []Step{}
	}

	for step, err := range m.Steps(maxIterations, initial) {
		if err != nil {
			return Result{}, err
		}
		iterations++
		state = step.NextState
		if steps != nil {
			steps = append(steps, step)
		}
	}

	status := StatusMaxIterationsReached
	if state.IsHalt() {
		status = StatusSuccessful
	}

	return Result{
		Status:       status,
		Result:       m.tape.String(),
		Iterations:   iterations,
		HeadPosition: m.position,
		State:        state,
		Steps:        steps,
	}, nil
}
