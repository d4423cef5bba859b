package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/descs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/renders"
	"github.com/reusee/turing/runners"
)

var (
	files      = cmds.Collect[string]("-file")
	printRules = cmds.Switch("-print-rules")
	printTape  = cmds.Switch("-print-tape")
	steps      = cmds.Var[int]("-steps")
	tap        = cmds.Switch("-tap")
)

// Execute runs the descriptions named by -file and writes one result per line to w.
type Execute func(ctx context.Context, w io.Writer) error

func (Module) Execute(
	load descs.Load,
	runBatch runners.RunBatch,
	openSession runners.OpenSession,
	tapFunc debugs.Tap,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, w io.Writer) error {
		var descriptions []descs.Description
		for _, location := range *files {
			desc, err := load(ctx, location)
			if err != nil {
				return err
			}
			descriptions = append(descriptions, desc)
		}
		if len(descriptions) == 0 {
			return nil
		}

		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)

		if *steps > 0 {
			return stepThrough(w, openSession, descriptions[0], *steps)
		}

		var results []machines.Result
		if *printRules || *printTape {
			// sequential, to render each machine around its run
			for _, desc := range descriptions {
				session, err := openSession(desc)
				if err != nil {
					return err
				}
				machine := session.Machine()
				if *printRules {
					if err := renders.Rules(w, machine, true); err != nil {
						return err
					}
				}
				if *printTape {
					if err := renders.Tape(w, machine, true); err != nil {
						return err
					}
				}
				result, err := session.Go()
				if err != nil {
					return err
				}
				if *printTape {
					if err := renders.Tape(w, machine, true); err != nil {
						return err
					}
				}
				if err := encoder.Encode(result); err != nil {
					return err
				}
				results = append(results, result)
			}

		} else {
			var err error
			results, err = runBatch(ctx, descriptions)
			if err != nil {
				return err
			}
			for _, result := range results {
				if err := encoder.Encode(result); err != nil {
					return err
				}
			}
		}

		logger.DebugContext(ctx, "executed",
			"descriptions", len(descriptions),
		)

		if *tap {
			tapFunc(ctx, "results", map[string]any{
				"files":        *files,
				"descriptions": descriptions,
				"results":      results,
			})
		}

		return nil
	}
}

// stepThrough applies up to n single steps, printing the tape after each.
func stepThrough(w io.Writer, openSession runners.OpenSession, desc descs.Description, n int) error {
	session, err := openSession(desc)
	if err != nil {
		return err
	}
	machine := session.Machine()
	if err := renders.Tape(w, machine, true); err != nil {
		return err
	}
	for range n {
		if session.Halted() {
			break
		}
		result, err := session.Step()
		if err != nil {
			return err
		}
		if result.Iterations == 0 {
			break
		}
		if err := renders.Tape(w, machine, true); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "state %s, tacts %d\n", session.State(), session.Tacts())
	return err
}
