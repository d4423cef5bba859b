package tapes

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

type Symbol rune

// Blank marks an empty cell.
const Blank Symbol = 'λ'

func (s Symbol) String() string {
	return string(rune(s))
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	sym, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// ParseSymbol accepts exactly one character.
func ParseSymbol(str string) (Symbol, error) {
	if utf8.RuneCountInString(str) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadSymbol, str)
	}
	r, _ := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrBadSymbol, str)
	}
	return Symbol(r), nil
}

var ErrBadSymbol = errors.New("symbol must be a single character")
