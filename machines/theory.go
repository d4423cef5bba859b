package machines

const Theory = `
# Machine Theory

A machine is a single-tape, single-head deterministic Turing machine.

## 1. The Tape
An infinite sequence of cells indexed by integers. Every cell holds the blank symbol (λ) until written.
Only non-blank cells take space; writing a blank erases the cell.

## 2. The Rule Table
For a state and the symbol under the head, a rule gives the symbol to write, the head move (L, R or N) and the next state.
The halt state (!) ends the run. The rule leading to it is still applied in full, write and move included.

## 3. The Run Loop
1. **Read**: fetch the symbol under the head.
2. **Lookup**: find the rule for the current state and that symbol. No rule means a broken table; the run aborts.
3. **Write**: put the rule's symbol in the cell.
4. **Trace**: in by-step mode, record the transition.
5. **Move**: shift the head.
6. **Advance**: count the iteration and switch to the next state.

The loop ends at the halt state (status "successful") or when the iteration budget is spent ("max iterations reached").

## 4. Incremental Runs
The head position lives on the machine and survives runs; the current state does not.
Resuming a run means passing the state a previous result stopped in as the next initial state.
A run that starts in the halt state applies nothing and reports zero iterations.
`
