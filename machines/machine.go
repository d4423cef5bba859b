package machines

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/turing/tapes"
)

type Config struct {
	// symbols without the blank
	Alphabet string
	Rules    Table
	Tape     string
	Position int
}

type Machine struct {
	alphabet Alphabet
	rules    Table
	tape     *tapes.Tape
	position int
}

func New(config Config) (*Machine, error) {
	alphabet, err := NewAlphabet(config.Alphabet)
	if err != nil {
		return nil, err
	}
	rules := config.Rules.Clone()
	return &Machine{
		alphabet: alphabet,
		rules:    rules,
		tape:     tapes.New(config.Tape),
		position: config.Position,
	}, nil
}

// Reset replaces the tape and the head position. Alphabet and rules are kept.
func (m *Machine) Reset(tape string, position int) {
	m.tape = tapes.New(tape)
	m.position = position
}

func (m *Machine) Alphabet() Alphabet {
	return slices.Clone(m.alphabet)
}

func (m *Machine) Rules() Table {
	return m.rules.Clone()
}

func (m *Machine) Position() int {
	return m.position
}

func (m *Machine) Read(index int) tapes.Symbol {
	return m.tape.Read(index)
}

// Write sets a tape cell from outside a run. Symbols outside the alphabet are rejected and the cell is left unchanged.
func (m *Machine) Write(index int, symbol tapes.Symbol) error {
	if !m.alphabet.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrNotInAlphabet, symbol)
	}
	m.tape.Write(index, symbol)
	return nil
}

func (m *Machine) TapeString() string {
	return m.tape.String()
}

func (m *Machine) TapeWithHead() string {
	return m.tape.StringWithHead(m.position)
}

func (m *Machine) TapeBounds() (left, right int) {
	return m.tape.Bounds()
}

// Reconfigure installs an alphabet and a rule table that the caller has already validated.
// Tape cells holding symbols outside the new alphabet are cleared; the number of cleared cells is returned.
func (m *Machine) Reconfigure(alphabet Alphabet, rules Table) int {
	if !alphabet.Contains(tapes.Blank) {
		alphabet = append(slices.Clone(alphabet), tapes.Blank)
	}
	m.alphabet = slices.Clone(alphabet)
	m.rules = rules.Clone()
	return m.tape.Filter(m.alphabet.Contains)
}

// Validate reports every gap in the rule table: missing rules for alphabet symbols,
// written symbols outside the alphabet and transitions to undefined states.
// Run does not call it; a machine may still halt with an incomplete table.
func (m *Machine) Validate() error {
	var errs []error
	for _, state := range m.rules.States() {
		for _, symbol := range m.alphabet {
			rule, ok := m.rules.Lookup(state, symbol)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: state %q symbol %q",
					ErrMissingRule, state, symbol))
				continue
			}
			if !m.alphabet.Contains(rule.Write) {
				errs = append(errs, fmt.Errorf("%w: state %q symbol %q writes %q",
					ErrNotInAlphabet, state, symbol, rule.Write))
			}
			if !rule.Next.IsHalt() {
				if _, ok := m.rules[rule.Next]; !ok {
					errs = append(errs, fmt.Errorf("%w: state %q symbol %q goes to %q",
						ErrUnknownState, state, symbol, rule.Next))
				}
			}
		}
	}
	return errors.Join(errs...)
}
