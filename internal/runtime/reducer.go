package runtime

import "github.com/aretw0/tally/pkg/domain"

// Reduce is the counter transition function. It dispatches on the action's
// Type discriminator and returns the next state as a fresh value.
//
// The function is total: unrecognized types (including the empty string) fall
// through to the default arm and return the input state unchanged, never an
// error. It has no observable effects — no logging, no globals, no mutation
// of either argument — which is what makes it safe to call concurrently and
// trivial to compose.
func Reduce(s domain.State, a domain.Action) domain.State {
	switch a.Type {
	case domain.ActionIncrement:
		return domain.State{Count: s.Count + 1}
	case domain.ActionDecrement:
		return domain.State{Count: s.Count - 1}
	default:
		// Unknown actions are no-ops, not errors.
		return s
	}
}

// Apply folds a sequence of actions over a starting state and returns the
// final state.
func Apply(s domain.State, actions ...domain.Action) domain.State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

// Trace folds like Apply but records every intermediate step. The first step
// holds the starting state with a zero Action; each following step pairs an
// action with the state it produced. Trace allocates its own slice and leaves
// its inputs untouched.
func Trace(s domain.State, actions ...domain.Action) []domain.Step {
	steps := make([]domain.Step, 0, len(actions)+1)
	steps = append(steps, domain.Step{State: s})
	for _, a := range actions {
		s = Reduce(s, a)
		steps = append(steps, domain.Step{Action: a, State: s})
	}
	return steps
}
