package runners

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/turing/descs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tmconfigs"
)

var ErrIncomplete = errors.New("incomplete rule table")

type runOptions struct {
	mode          machines.Mode
	maxIterations int
	initial       *machines.State
}

type Option func(*runOptions)

func WithMode(mode machines.Mode) Option {
	return func(o *runOptions) {
		o.mode = mode
	}
}

func WithMaxIterations(n int) Option {
	return func(o *runOptions) {
		o.maxIterations = n
	}
}

// WithInitialState overrides the initial state of the description.
func WithInitialState(state machines.State) Option {
	return func(o *runOptions) {
		o.initial = &state
	}
}

// Run builds a machine from desc and runs it to completion.
// The initial state is taken from the options, then the description, then the configuration.
type Run func(ctx context.Context, desc descs.Description, options ...Option) (machines.Result, error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	metrics *Metrics,
	maxIterations tmconfigs.MaxIterations,
	initialState tmconfigs.InitialState,
	trace tmconfigs.Trace,
	strict tmconfigs.Strict,
) Run {
	return func(ctx context.Context, desc descs.Description, options ...Option) (result machines.Result, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				metrics.errors.Inc()
				err = logs.WrapSpan(ctx, err)
				logger.WarnContext(ctx, "run failed",
					"error", err,
				)
			}
		}()

		opts := runOptions{
			mode:          trace.Mode(),
			maxIterations: int(maxIterations),
		}
		for _, option := range options {
			option(&opts)
		}

		machine, initial, err := descs.Build(desc)
		if err != nil {
			return
		}
		switch {
		case opts.initial != nil:
			initial = *opts.initial
		case desc.InitialState == "":
			initial = initialState.State()
		}

		if strict {
			if err = machine.Validate(); err != nil {
				return result, fmt.Errorf("%w: %w", ErrIncomplete, err)
			}
		}

		logger.InfoContext(ctx, "run started",
			"mode", opts.mode.String(),
			"max_iterations", opts.maxIterations,
			"initial_state", initial.String(),
		)
		result, err = machine.Run(opts.mode, opts.maxIterations, initial)
		if err != nil {
			return
		}
		metrics.observe(result)
		logger.InfoContext(ctx, "run finished",
			"status", string(result.Status),
			"iterations", result.Iterations,
			"head_position", result.HeadPosition,
		)
		return result, nil
	}
}
