package machines

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reusee/turing/tapes"
)

const blank = tapes.Blank

var q0, q1 = Named("q0"), Named("q1")

func flipConfig() Config {
	return Config{
		Alphabet: "ab",
		Tape:     "aabbaba",
		Rules: Table{
			q0: {
				'a':   {Write: 'b', Move: Right, Next: q0},
				'b':   {Write: 'a', Move: Right, Next: q0},
				blank: {Write: blank, Move: Stay, Next: Halt},
			},
		},
	}
}

func shiftConfig() Config {
	return Config{
		Alphabet: "ab",
		Tape:     "aabaab",
		Position: 1,
		Rules: Table{
			q0: {
				'a':   {Write: 'a', Move: Right, Next: q1},
				'b':   {Write: 'b', Move: Right, Next: q1},
				blank: {Write: blank, Move: Stay, Next: Halt},
			},
			q1: {
				'a':   {Write: 'b', Move: Right, Next: q0},
				'b':   {Write: 'a', Move: Right, Next: q0},
				blank: {Write: blank, Move: Stay, Next: Halt},
			},
		},
	}
}

// runawayConfig never halts: past the input q0 keeps reading blank and moving right.
func runawayConfig() Config {
	return Config{
		Alphabet: "ab",
		Tape:     "abba",
		Rules: Table{
			q0: {
				'a':   {Write: 'a', Move: Right, Next: q0},
				'b':   {Write: 'b', Move: Right, Next: q0},
				blank: {Write: blank, Move: Right, Next: q0},
			},
		},
	}
}

func mustNew(t *testing.T, config Config) *Machine {
	t.Helper()
	m, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestEmptyMachine(t *testing.T) {
	m := mustNew(t, Config{})
	result, err := m.Run(ModeNormal, DefaultMaxIterations, Halt)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != StatusSuccessful {
		t.Fatalf("got %v", result.Status)
	}
	if result.Iterations != 0 {
		t.Fatalf("got %v", result.Iterations)
	}
	if result.Result != "" {
		t.Fatalf("got %q", result.Result)
	}
	if result.HeadPosition != 0 {
		t.Fatalf("got %v", result.HeadPosition)
	}
	if result.Steps != nil {
		t.Fatalf("got %v", result.Steps)
	}
}

func TestStepMove(t *testing.T) {
	m := mustNew(t, flipConfig())
	result, err := m.Run(ModeByStep, DefaultMaxIterations, Named(DefaultInitialState))
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != StatusSuccessful {
		t.Fatalf("got %v", result.Status)
	}
	if result.Iterations != 8 {
		t.Fatalf("got %v", result.Iterations)
	}
	if result.Result != "bbaabab" {
		t.Fatalf("got %q", result.Result)
	}
	if result.HeadPosition != 7 {
		t.Fatalf("got %v", result.HeadPosition)
	}
	if !result.State.IsHalt() {
		t.Fatalf("got %v", result.State)
	}

	steps := result.Steps
	if len(steps) != 8 {
		t.Fatalf("got %d", len(steps))
	}
	if steps[0] != (Step{
		CurrState:     q0,
		NextState:     q0,
		CurrCharacter: 'a',
		NextCharacter: 'b',
		Move:          Right,
		Tact:          0,
	}) {
		t.Fatalf("got %+v", steps[0])
	}
	if steps[7] != (Step{
		CurrState:     q0,
		NextState:     Halt,
		CurrCharacter: blank,
		NextCharacter: blank,
		Move:          Stay,
		Tact:          7,
	}) {
		t.Fatalf("got %+v", steps[7])
	}
	for i, step := range steps {
		if step.Tact != i {
			t.Fatalf("got %d at %d", step.Tact, i)
		}
	}
}

func TestInitialState(t *testing.T) {
	m := mustNew(t, shiftConfig())
	result, err := m.Run(ModeNormal, DefaultMaxIterations, q1)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != StatusSuccessful {
		t.Fatalf("got %v", result.Status)
	}
	if result.Iterations != 6 {
		t.Fatalf("got %v", result.Iterations)
	}
	if result.Result != "abbbaa" {
		t.Fatalf("got %q", result.Result)
	}
	if result.HeadPosition != 6 {
		t.Fatalf("got %v", result.HeadPosition)
	}
}

func TestMaxIterations(t *testing.T) {
	m := mustNew(t, runawayConfig())
	result, err := m.Run(ModeNormal, DefaultMaxIterations, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != StatusMaxIterationsReached {
		t.Fatalf("got %v", result.Status)
	}
	if result.Iterations != DefaultMaxIterations {
		t.Fatalf("got %v", result.Iterations)
	}
	if result.Result != "abba" {
		t.Fatalf("got %q", result.Result)
	}
	if result.HeadPosition != DefaultMaxIterations {
		t.Fatalf("got %v", result.HeadPosition)
	}
	if result.State != q0 {
		t.Fatalf("got %v", result.State)
	}
}

func TestIterationBudget(t *testing.T) {
	for _, max := range []int{0, 1, 5, 7} {
		m := mustNew(t, flipConfig())
		result, err := m.Run(ModeByStep, max, q0)
		if err != nil {
			t.Fatal(err)
		}
		if result.Iterations != max {
			t.Fatalf("got %d for %d", result.Iterations, max)
		}
		if len(result.Steps) != max {
			t.Fatalf("got %d steps for %d", len(result.Steps), max)
		}
		if result.Status != StatusMaxIterationsReached {
			t.Fatalf("got %v for %d", result.Status, max)
		}
	}

	// halting on the last budgeted iteration is a success
	m := mustNew(t, flipConfig())
	result, err := m.Run(ModeNormal, 8, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != StatusSuccessful || result.Iterations != 8 {
		t.Fatalf("got %+v", result)
	}

	// negative budget runs nothing
	m = mustNew(t, flipConfig())
	result, err = m.Run(ModeNormal, -1, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Iterations != 0 || result.Result != "aabbaba" {
		t.Fatalf("got %+v", result)
	}
}

func TestHaltIdempotence(t *testing.T) {
	m := mustNew(t, flipConfig())
	if _, err := m.Run(ModeNormal, DefaultMaxIterations, q0); err != nil {
		t.Fatal(err)
	}
	tape := m.TapeWithHead()
	pos := m.Position()

	result, err := m.Run(ModeNormal, 1, Halt)
	if err != nil {
		t.Fatal(err)
	}
	if result.Iterations != 0 {
		t.Fatalf("got %d", result.Iterations)
	}
	if result.Status != StatusSuccessful {
		t.Fatalf("got %v", result.Status)
	}
	if m.TapeWithHead() != tape || m.Position() != pos {
		t.Fatalf("got %q %d", m.TapeWithHead(), m.Position())
	}
}

func TestIncrementalRuns(t *testing.T) {
	m := mustNew(t, shiftConfig())
	state := q1
	total := 0
	for {
		result, err := m.Run(ModeNormal, 1, state)
		if err != nil {
			t.Fatal(err)
		}
		if result.Iterations == 0 {
			break
		}
		total += result.Iterations
		state = result.State
		if total > 100 {
			t.Fatal("runaway")
		}
	}
	if total != 6 {
		t.Fatalf("got %d", total)
	}
	if m.TapeString() != "abbbaa" || m.Position() != 6 {
		t.Fatalf("got %q %d", m.TapeString(), m.Position())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Result {
		m := mustNew(t, shiftConfig())
		result, err := m.Run(ModeByStep, DefaultMaxIterations, q1)
		if err != nil {
			t.Fatal(err)
		}
		return result
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("got %+v and %+v", a, b)
	}
}

func TestHeadPersistsAcrossRuns(t *testing.T) {
	m := mustNew(t, flipConfig())
	result, err := m.Run(ModeNormal, 3, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.HeadPosition != 3 || m.Position() != 3 {
		t.Fatalf("got %d", result.HeadPosition)
	}
	result, err = m.Run(ModeNormal, DefaultMaxIterations, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Iterations != 5 || result.HeadPosition != 7 {
		t.Fatalf("got %+v", result)
	}
	if result.Result != "bbaabab" {
		t.Fatalf("got %q", result.Result)
	}
}

func TestMissingRule(t *testing.T) {
	config := flipConfig()
	config.Rules = config.Rules.Clone()
	delete(config.Rules[q0], 'b')
	m := mustNew(t, config)

	_, err := m.Run(ModeByStep, DefaultMaxIterations, q0)
	if !errors.Is(err, ErrMissingRule) {
		t.Fatalf("got %v", err)
	}
	var missing *MissingRuleError
	if !errors.As(err, &missing) {
		t.Fatalf("got %T", err)
	}
	if missing.State != q0 || missing.Symbol != 'b' || missing.Iteration != 2 {
		t.Fatalf("got %+v", missing)
	}
	if !strings.Contains(err.Error(), `state "q0" symbol "b"`) {
		t.Fatalf("got %v", err)
	}

	// unknown initial state
	m = mustNew(t, flipConfig())
	_, err = m.Run(ModeNormal, DefaultMaxIterations, Named("nope"))
	if !errors.Is(err, ErrMissingRule) {
		t.Fatalf("got %v", err)
	}
}

func TestFinalHaltTransitionIsApplied(t *testing.T) {
	m := mustNew(t, Config{
		Alphabet: "ab",
		Tape:     "a",
		Rules: Table{
			q0: {
				'a': {Write: 'b', Move: Left, Next: Halt},
			},
		},
	})
	result, err := m.Run(ModeNormal, DefaultMaxIterations, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Result != "b" || result.HeadPosition != -1 || result.Iterations != 1 {
		t.Fatalf("got %+v", result)
	}
}

func TestReset(t *testing.T) {
	m := mustNew(t, flipConfig())
	if _, err := m.Run(ModeNormal, DefaultMaxIterations, q0); err != nil {
		t.Fatal(err)
	}
	m.Reset("ab", 0)
	if m.TapeString() != "ab" || m.Position() != 0 {
		t.Fatalf("got %q %d", m.TapeString(), m.Position())
	}
	result, err := m.Run(ModeNormal, DefaultMaxIterations, q0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Result != "ba" || result.Iterations != 3 {
		t.Fatalf("got %+v", result)
	}
	if m.Alphabet().String() != "ab" {
		t.Fatalf("got %v", m.Alphabet())
	}
}

func TestOwnership(t *testing.T) {
	config := flipConfig()
	m := mustNew(t, config)
	config.Rules[q0]['a'] = Rule{Write: 'a', Move: Stay, Next: Halt}
	rules := m.Rules()
	if rules[q0]['a'].Write != 'b' {
		t.Fatal("machine shares the table")
	}
	rules[q0]['b'] = Rule{}
	if m.Rules()[q0]['b'].Write != 'a' {
		t.Fatal("Rules leaks the table")
	}
}

func TestDuplicateAlphabet(t *testing.T) {
	for _, str := range []string{"aa", "aba", "aλ"} {
		_, err := New(Config{Alphabet: str})
		if !errors.Is(err, ErrDuplicateSymbol) {
			t.Fatalf("got %v for %q", err, str)
		}
	}
	alphabet, err := NewAlphabet("ab")
	if err != nil {
		t.Fatal(err)
	}
	if len(alphabet) != 3 || alphabet[2] != blank {
		t.Fatalf("got %v", alphabet)
	}
	if !alphabet.Contains(blank) {
		t.Fatal()
	}
}

func TestWrite(t *testing.T) {
	m := mustNew(t, flipConfig())
	if err := m.Write(-2, 'b'); err != nil {
		t.Fatal(err)
	}
	if m.TapeString() != "bλaabbaba" {
		t.Fatalf("got %q", m.TapeString())
	}
	err := m.Write(0, 'z')
	if !errors.Is(err, ErrNotInAlphabet) {
		t.Fatalf("got %v", err)
	}
	if m.Read(0) != 'a' {
		t.Fatalf("got %v", m.Read(0))
	}
	if err := m.Write(-2, blank); err != nil {
		t.Fatal(err)
	}
	if m.TapeString() != "aabbaba" {
		t.Fatalf("got %q", m.TapeString())
	}
}

func TestReconfigure(t *testing.T) {
	m := mustNew(t, flipConfig())
	alphabet, err := NewAlphabet("b")
	if err != nil {
		t.Fatal(err)
	}
	rules := Table{
		q0: {
			'b':   {Write: blank, Move: Right, Next: q0},
			blank: {Write: blank, Move: Stay, Next: Halt},
		},
	}
	removed := m.Reconfigure(alphabet, rules)
	if removed != 4 {
		t.Fatalf("got %d", removed)
	}
	if m.TapeString() != "bbλb" {
		t.Fatalf("got %q", m.TapeString())
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	if err := mustNew(t, shiftConfig()).Validate(); err != nil {
		t.Fatal(err)
	}

	// complete and consistent, only never halting
	if err := mustNew(t, runawayConfig()).Validate(); err != nil {
		t.Fatal(err)
	}

	config := runawayConfig()
	config.Rules = config.Rules.Clone()
	delete(config.Rules[q0], 'b')
	err := mustNew(t, config).Validate()
	if !errors.Is(err, ErrMissingRule) {
		t.Fatalf("got %v", err)
	}
	if errors.Is(err, ErrNotInAlphabet) {
		t.Fatalf("got %v", err)
	}

	config = flipConfig()
	config.Rules = config.Rules.Clone()
	config.Rules[q0]['a'] = Rule{Write: 'a', Move: Right, Next: Named("q9")}
	config.Rules[q0]['b'] = Rule{Write: 'z', Move: Right, Next: q0}
	err = mustNew(t, config).Validate()
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrNotInAlphabet) {
		t.Fatalf("got %v", err)
	}
	if errors.Is(err, ErrMissingRule) {
		t.Fatalf("got %v", err)
	}
}

func TestResultJSON(t *testing.T) {
	m := mustNew(t, flipConfig())
	result, err := m.Run(ModeByStep, 1, q0)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"status":"max iterations reached","result":"babbaba","iterations":1,"head_position":1,"state":"q0","steps":[{"curr_state":"q0","next_state":"q0","curr_character":"a","next_character":"b","move":"R","tact":0}]}`
	if string(data) != expected {
		t.Fatalf("got %s", data)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, result) {
		t.Fatalf("got %+v", decoded)
	}

	// no steps key in normal mode, empty list in by-step mode
	m = mustNew(t, Config{})
	result, err = m.Run(ModeNormal, 1, Halt)
	if err != nil {
		t.Fatal(err)
	}
	data, err = json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "steps") {
		t.Fatalf("got %s", data)
	}
	result, err = m.Run(ModeByStep, 1, Halt)
	if err != nil {
		t.Fatal(err)
	}
	data, err = json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"steps":[]`) {
		t.Fatalf("got %s", data)
	}
	if !strings.Contains(string(data), `"state":"!"`) {
		t.Fatalf("got %s", data)
	}
}

func TestParseMove(t *testing.T) {
	for str, expected := range map[string]Move{
		"L": Left,
		"l": Left,
		"R": Right,
		"r": Right,
		"N": Stay,
		"n": Stay,
	} {
		move, err := ParseMove(str)
		if err != nil {
			t.Fatal(err)
		}
		if move != expected {
			t.Fatalf("got %v for %s", move, str)
		}
	}
	if _, err := ParseMove("S"); !errors.Is(err, ErrBadMove) {
		t.Fatalf("got %v", err)
	}
	if _, err := Move(42).MarshalText(); !errors.Is(err, ErrBadMove) {
		t.Fatalf("got %v", err)
	}
}

func TestParseState(t *testing.T) {
	if !ParseState(HaltText).IsHalt() {
		t.Fatal()
	}
	s := ParseState("q0")
	if s.IsHalt() || s != q0 || s.Name() != "q0" {
		t.Fatalf("got %v", s)
	}
	if Named(HaltText) == Halt {
		t.Fatal("named state equals halt")
	}
}
