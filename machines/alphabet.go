package machines

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reusee/turing/tapes"
)

// Alphabet is an ordered set of distinct symbols, always ending with tapes.Blank.
type Alphabet []tapes.Symbol

// NewAlphabet appends the blank symbol to str. Repeated symbols, including an explicit blank, are rejected.
func NewAlphabet(str string) (Alphabet, error) {
	var ret Alphabet
	for _, r := range str {
		s := tapes.Symbol(r)
		if slices.Contains(ret, s) || s == tapes.Blank {
			return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateSymbol, string(r), str)
		}
		ret = append(ret, s)
	}
	ret = append(ret, tapes.Blank)
	return ret, nil
}

func (a Alphabet) Contains(s tapes.Symbol) bool {
	return slices.Contains(a, s)
}

// String returns the symbols without the trailing blank, the form accepted by NewAlphabet.
func (a Alphabet) String() string {
	var b strings.Builder
	for _, s := range a {
		if s == tapes.Blank {
			continue
		}
		b.WriteRune(rune(s))
	}
	return b.String()
}
