package descs

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

var ErrInvalidDescription = errors.New("invalid description")

// Build constructs a machine. Every problem found is reported, joined under ErrInvalidDescription.
// The returned state is the description's initial state, or machines.DefaultInitialState when unset.
func Build(desc Description) (*machines.Machine, machines.State, error) {
	var errs []error

	rules := make(machines.Table)
	for _, stateName := range slices.Sorted(maps.Keys(desc.Rules)) {
		if stateName == "" || stateName == machines.HaltText {
			errs = append(errs, fmt.Errorf("bad state name %q", stateName))
			continue
		}
		state := machines.Named(stateName)
		row := desc.Rules[stateName]
		if len(row) == 0 {
			// a state without rules still exists
			rules[state] = make(map[tapes.Symbol]machines.Rule)
			continue
		}
		for _, key := range slices.Sorted(maps.Keys(row)) {
			symbol, err := tapes.ParseSymbol(key)
			if err != nil {
				errs = append(errs, fmt.Errorf("state %q: %w", stateName, err))
				continue
			}
			rule, err := ParseRule(row[key])
			if err != nil {
				errs = append(errs, fmt.Errorf("state %q symbol %q: %w", stateName, key, err))
				continue
			}
			rules.Set(state, symbol, rule)
		}
	}

	machine, err := machines.New(machines.Config{
		Alphabet: desc.Alphabet,
		Rules:    rules,
		Tape:     desc.Tape,
		Position: desc.Position,
	})
	if err != nil {
		errs = append(errs, err)
	}

	initial := machines.Named(machines.DefaultInitialState)
	if desc.InitialState != "" {
		initial = machines.ParseState(desc.InitialState)
	}

	if len(errs) > 0 {
		return nil, initial, fmt.Errorf("%w: %w", ErrInvalidDescription, errors.Join(errs...))
	}
	return machine, initial, nil
}

// ParseRule parses a [write, move, next] triple.
func ParseRule(parts []string) (rule machines.Rule, err error) {
	if len(parts) != 3 {
		return rule, fmt.Errorf("expecting [write, move, next], got %d elements", len(parts))
	}
	rule.Write, err = tapes.ParseSymbol(parts[0])
	if err != nil {
		return
	}
	rule.Move, err = machines.ParseMove(parts[1])
	if err != nil {
		return
	}
	if parts[2] == "" {
		return rule, fmt.Errorf("empty next state")
	}
	rule.Next = machines.ParseState(parts[2])
	return rule, nil
}

// Describe is the inverse of Build.
// The tape is taken from its leftmost non-blank cell and the position shifted to match.
func Describe(machine *machines.Machine, initial machines.State) Description {
	rules := make(map[string]map[string][]string)
	for state, row := range machine.Rules() {
		r := make(map[string][]string, len(row))
		for symbol, rule := range row {
			r[symbol.String()] = []string{
				rule.Write.String(),
				rule.Move.String(),
				rule.Next.String(),
			}
		}
		rules[state.String()] = r
	}

	left, _ := machine.TapeBounds()
	desc := Description{
		Alphabet: machine.Alphabet().String(),
		Rules:    rules,
		Tape:     machine.TapeString(),
		Position: machine.Position() - left,
	}
	if initial.String() != machines.DefaultInitialState {
		desc.InitialState = initial.String()
	}
	return desc
}
