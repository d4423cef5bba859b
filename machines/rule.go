package machines

import (
	"maps"
	"slices"
	"strings"

	"github.com/reusee/turing/tapes"
)

type Rule struct {
	Write tapes.Symbol
	Move  Move
	Next  State
}

func (r Rule) String() string {
	return r.Write.String() + " " + r.Move.String() + " " + r.Next.String()
}

// Table maps a state and the symbol under the head to a rule.
type Table map[State]map[tapes.Symbol]Rule

func (t Table) Lookup(state State, symbol tapes.Symbol) (Rule, bool) {
	rule, ok := t[state][symbol]
	return rule, ok
}

// Set adds a rule, creating the state row if needed.
func (t Table) Set(state State, symbol tapes.Symbol, rule Rule) {
	row, ok := t[state]
	if !ok {
		row = make(map[tapes.Symbol]Rule)
		t[state] = row
	}
	row[symbol] = rule
}

func (t Table) Clone() Table {
	ret := make(Table, len(t))
	for state, row := range t {
		ret[state] = maps.Clone(row)
		if ret[state] == nil {
			ret[state] = make(map[tapes.Symbol]Rule)
		}
	}
	return ret
}

// States returns the states in name order.
func (t Table) States() []State {
	return slices.SortedFunc(maps.Keys(t), func(a, b State) int {
		return strings.Compare(a.String(), b.String())
	})
}
