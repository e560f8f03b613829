// Package cli implements the command logic behind cmd/tally. It owns the
// state value and threads it through each transition; no command keeps
// module-level mutable state.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/tally/internal/runtime"
	"github.com/aretw0/tally/internal/script"
	"github.com/aretw0/tally/pkg/domain"
)

// RunWalkthrough executes the canonical reducer demonstration: start at zero,
// increment, decrement, printing the state after each step.
//
// Output is exactly three lines:
//
//	{ count: 0 }
//	{ count: 1 }
//	{ count: 0 }
func RunWalkthrough(out io.Writer) {
	p := NewPrinter(out)

	state := domain.NewState()
	p.State(state)

	for _, a := range []domain.Action{
		{Type: domain.ActionIncrement},
		{Type: domain.ActionDecrement},
	} {
		state = runtime.Reduce(state, a)
		p.State(state)
	}
}

// ReplayOptions configures the replay command.
type ReplayOptions struct {
	Path string
	JSON bool
}

// RunReplay loads a script and prints its trace, initial state first.
// In JSON mode each step is one NDJSON line instead of the canonical text.
func RunReplay(out io.Writer, opts ReplayOptions) error {
	s, err := script.Load(opts.Path)
	if err != nil {
		return err
	}

	steps := runtime.Trace(s.Initial, s.Actions...)

	if opts.JSON {
		enc := json.NewEncoder(out)
		for _, step := range steps {
			if err := enc.Encode(step); err != nil {
				return fmt.Errorf("failed to encode step: %w", err)
			}
		}
		return nil
	}

	p := NewPrinter(out)
	for _, step := range steps {
		p.State(step.State)
	}
	return nil
}
