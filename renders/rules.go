package renders

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

const cellWidth = 8

// Rules prints the alphabet and the rule table as a grid, one row per state.
// Prettified cells drop the parts of a rule that leave things unchanged.
func Rules(w io.Writer, machine *machines.Machine, prettify bool) error {
	alphabet := machine.Alphabet()
	rules := machine.Rules()

	var b strings.Builder
	b.WriteString("Alphabet: ")
	for _, symbol := range alphabet {
		b.WriteString(symbol.String())
	}
	b.WriteString("\nRules table:\n")

	line := strings.Repeat("+----------", len(alphabet)) + "+----------+\n"
	row := func(head string, cells []string) {
		b.WriteString("| ")
		b.WriteString(head)
		b.WriteString(" | ")
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%*s", cellWidth, cell)
		}
		b.WriteString(" |\n")
	}

	b.WriteString(line)
	header := make([]string, 0, len(alphabet))
	for _, symbol := range alphabet {
		header = append(header, symbol.String())
	}
	row(strings.Repeat(" ", cellWidth), header)
	b.WriteString(line)

	for _, state := range rules.States() {
		cells := make([]string, 0, len(alphabet))
		for _, symbol := range alphabet {
			cells = append(cells, cellString(rules, state, symbol, prettify))
		}
		row(fmt.Sprintf("%*s", cellWidth, state), cells)
	}

	b.WriteString(line)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func cellString(rules machines.Table, state machines.State, symbol tapes.Symbol, prettify bool) string {
	rule, ok := rules.Lookup(state, symbol)
	if !ok {
		return ""
	}
	if prettify && rule.Write == symbol {
		if rule.Next == state {
			return rule.Move.String()
		}
		if rule.Move == machines.Stay {
			return rule.Next.String()
		}
	}
	return rule.Write.String() + " " + rule.Next.String() + " " + rule.Move.String()
}
