package domain

import "fmt"

// State represents the application's current data snapshot.
// It is immutable by convention: transitions return a new State value and
// never write through the input. Identity is structural — two states with
// the same Count are the same state.
type State struct {
	Count int64 `json:"count" yaml:"count"`
}

// NewState returns the canonical starting state.
func NewState() State {
	return State{}
}

// Equal reports structural equality between two states.
func (s State) Equal(other State) bool {
	return s.Count == other.Count
}

// String renders the state in its canonical console form, e.g. "{ count: 0 }".
func (s State) String() string {
	return fmt.Sprintf("{ count: %d }", s.Count)
}
