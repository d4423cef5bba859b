package descs

// Description is the serialized form of a machine.
// Rules map a state name and a symbol to a [write, move, next] triple.
type Description struct {
	Alphabet     string                         `json:"alphabet" yaml:"alphabet"`
	Rules        map[string]map[string][]string `json:"rules" yaml:"rules"`
	Tape         string                         `json:"tape,omitempty" yaml:"tape,omitempty"`
	Position     int                            `json:"position,omitempty" yaml:"position,omitempty"`
	InitialState string                         `json:"initial_state,omitempty" yaml:"initial_state,omitempty"`
}
