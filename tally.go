package tally

import (
	"github.com/aretw0/tally/internal/runtime"
	"github.com/aretw0/tally/pkg/domain"
)

// Version is the current release of the tally module.
const Version = "0.1.0"

// Reduce computes the next state from the current state and an action.
// It is the module's single transition function: total, deterministic, and
// free of observable side effects. Unrecognized action types return the input
// state unchanged.
func Reduce(state domain.State, action domain.Action) domain.State {
	return runtime.Reduce(state, action)
}

// Apply folds a sequence of actions over a starting state and returns the
// final state.
func Apply(state domain.State, actions ...domain.Action) domain.State {
	return runtime.Apply(state, actions...)
}

// Trace folds like Apply but returns every intermediate step, starting state
// first.
func Trace(state domain.State, actions ...domain.Action) []domain.Step {
	return runtime.Trace(state, actions...)
}
