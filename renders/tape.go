package renders

import (
	"fmt"
	"io"

	"github.com/reusee/turing/machines"
)

func Tape(w io.Writer, machine *machines.Machine, withHead bool) error {
	str := machine.TapeString()
	if withHead {
		str = machine.TapeWithHead()
	}
	if str == "" {
		str = "Tape is empty"
	}
	_, err := fmt.Fprintln(w, str)
	return err
}
