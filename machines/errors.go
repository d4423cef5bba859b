package machines

import (
	"errors"
	"fmt"

	"github.com/reusee/turing/tapes"
)

var (
	ErrMissingRule     = errors.New("missing rule")
	ErrDuplicateSymbol = errors.New("duplicated symbol in alphabet")
	ErrNotInAlphabet   = errors.New("symbol not in alphabet")
	ErrUnknownState    = errors.New("unknown state")
)

// MissingRuleError is returned by Run when no rule matches the current state and symbol.
type MissingRuleError struct {
	State     State
	Symbol    tapes.Symbol
	Iteration int
}

func (e *MissingRuleError) Error() string {
	return fmt.Sprintf("%v: state %q symbol %q at iteration %d",
		ErrMissingRule, e.State, e.Symbol, e.Iteration)
}

func (e *MissingRuleError) Unwrap() error {
	return ErrMissingRule
}
