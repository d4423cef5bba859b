package edits

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

var ErrRejected = errors.New("edit rejected")

func reject(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRejected, fmt.Sprintf(format, args...))
}

// Editor applies validated edits to a machine.
// A rejected edit leaves the machine unchanged.
type Editor struct {
	machine *machines.Machine
	// rules of symbols removed from the alphabet, restored when the symbol is added back
	stash map[stashKey]machines.Rule
}

type stashKey struct {
	state  machines.State
	symbol tapes.Symbol
}

func NewEditor(machine *machines.Machine) *Editor {
	return &Editor{
		machine: machine,
		stash:   make(map[stashKey]machines.Rule),
	}
}

func (e *Editor) Machine() *machines.Machine {
	return e.machine
}

// SetCell writes one tape cell. Empty text writes the blank.
func (e *Editor) SetCell(index int, text string) error {
	if text == "" {
		return e.machine.Write(index, tapes.Blank)
	}
	symbol, err := tapes.ParseSymbol(text)
	if err != nil {
		return errors.Join(ErrRejected, err)
	}
	if err := e.machine.Write(index, symbol); err != nil {
		return errors.Join(ErrRejected, err)
	}
	return nil
}

// SetAlphabet replaces the alphabet. Tape cells outside the new alphabet are cleared
// and their count returned.
func (e *Editor) SetAlphabet(text string) (int, error) {
	alphabet, err := machines.NewAlphabet(text)
	if err != nil {
		return 0, errors.Join(ErrRejected, err)
	}
	old := e.machine.Alphabet()
	rules := e.machine.Rules()

	for state, row := range rules {
		for _, symbol := range old {
			if alphabet.Contains(symbol) {
				continue
			}
			if rule, ok := row[symbol]; ok {
				e.stash[stashKey{state, symbol}] = rule
				delete(row, symbol)
			}
		}
		for _, symbol := range alphabet {
			if old.Contains(symbol) {
				continue
			}
			key := stashKey{state, symbol}
			if rule, ok := e.stash[key]; ok {
				row[symbol] = rule
				delete(e.stash, key)
			}
		}
	}

	return e.machine.Reconfigure(alphabet, rules), nil
}

func (e *Editor) checkNewName(rules machines.Table, name string) error {
	if name == "" || name == machines.HaltText {
		return reject("bad state name %q", name)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return reject("state name %q contains spaces", name)
	}
	if _, ok := rules[machines.Named(name)]; ok {
		return reject("state %q exists", name)
	}
	return nil
}

func (e *Editor) AddState(name string) error {
	rules := e.machine.Rules()
	if err := e.checkNewName(rules, name); err != nil {
		return err
	}
	rules[machines.Named(name)] = make(map[tapes.Symbol]machines.Rule)
	e.machine.Reconfigure(e.machine.Alphabet(), rules)
	return nil
}

// RenameState renames a state and every rule targeting it.
func (e *Editor) RenameState(oldName, newName string) error {
	rules := e.machine.Rules()
	oldState := machines.Named(oldName)
	row, ok := rules[oldState]
	if !ok {
		return reject("no state %q", oldName)
	}
	if err := e.checkNewName(rules, newName); err != nil {
		return err
	}
	newState := machines.Named(newName)

	delete(rules, oldState)
	rules[newState] = row
	for _, row := range rules {
		for symbol, rule := range row {
			if rule.Next == oldState {
				rule.Next = newState
				row[symbol] = rule
			}
		}
	}

	stash := make(map[stashKey]machines.Rule, len(e.stash))
	for key, rule := range e.stash {
		if key.state == oldState {
			key.state = newState
		}
		if rule.Next == oldState {
			rule.Next = newState
		}
		stash[key] = rule
	}

	e.machine.Reconfigure(e.machine.Alphabet(), rules)
	e.stash = stash
	return nil
}

// DeleteState removes a state no other state transitions to.
func (e *Editor) DeleteState(name string) error {
	rules := e.machine.Rules()
	state := machines.Named(name)
	if _, ok := rules[state]; !ok {
		return reject("no state %q", name)
	}
	for _, from := range rules.States() {
		if from == state {
			continue
		}
		for _, rule := range rules[from] {
			if rule.Next == state {
				return reject("state %q is the target of a rule in state %q", name, from)
			}
		}
	}

	delete(rules, state)
	e.machine.Reconfigure(e.machine.Alphabet(), rules)
	for key := range e.stash {
		if key.state == state {
			delete(e.stash, key)
		}
	}
	return nil
}

const moveCodes = "LRNlrn"

// SetRule parses text as write symbol, move and next state separated by commas or spaces.
func (e *Editor) SetRule(stateName string, symbolText string, text string) error {
	alphabet := e.machine.Alphabet()
	rules := e.machine.Rules()

	state := machines.Named(stateName)
	if _, ok := rules[state]; !ok {
		return reject("no state %q", stateName)
	}
	symbol, err := tapes.ParseSymbol(symbolText)
	if err != nil {
		return errors.Join(ErrRejected, err)
	}
	if !alphabet.Contains(symbol) {
		return reject("symbol %q not in alphabet", symbol)
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 3 {
		return reject("expecting write, move and next state in %q", text)
	}

	write, err := tapes.ParseSymbol(parts[0])
	if err != nil {
		return errors.Join(ErrRejected, err)
	}
	if !alphabet.Contains(write) {
		return reject("symbol %q not in alphabet", write)
	}

	if len(parts[1]) != 1 || !strings.Contains(moveCodes, parts[1]) {
		return reject("bad move %q", parts[1])
	}
	move, err := machines.ParseMove(parts[1])
	if err != nil {
		return errors.Join(ErrRejected, err)
	}

	next := machines.ParseState(parts[2])
	if !next.IsHalt() {
		if _, ok := rules[next]; !ok {
			return reject("no state %q", parts[2])
		}
	}

	rules.Set(state, symbol, machines.Rule{
		Write: write,
		Move:  move,
		Next:  next,
	})
	e.machine.Reconfigure(alphabet, rules)
	return nil
}

// Stashed lists the symbols with stashed rules for state.
func (e *Editor) Stashed(stateName string) []tapes.Symbol {
	state := machines.Named(stateName)
	var ret []tapes.Symbol
	for key := range e.stash {
		if key.state == state {
			ret = append(ret, key.symbol)
		}
	}
	slices.Sort(ret)
	return ret
}
