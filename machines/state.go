package machines

// State identifies a machine state. The zero value is the state with the empty name.
type State struct {
	name string
	halt bool
}

// Halt terminates a run once reached.
var Halt = State{halt: true}

// HaltText is the text form of Halt in descriptions.
const HaltText = "!"

func Named(name string) State {
	return State{
		name: name,
	}
}

// ParseState maps HaltText to Halt and anything else to a named state.
func ParseState(str string) State {
	if str == HaltText {
		return Halt
	}
	return Named(str)
}

func (s State) IsHalt() bool {
	return s.halt
}

func (s State) Name() string {
	return s.name
}

func (s State) String() string {
	if s.halt {
		return HaltText
	}
	return s.name
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	*s = ParseState(string(text))
	return nil
}
