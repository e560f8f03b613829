package ports

import "github.com/aretw0/tally/pkg/domain"

// Reducer combines a state and an action into the next state.
//
// Implementations must be total and free of observable side effects: every
// input pair yields a well-formed State, unrecognized action types return the
// input state unchanged, and neither argument is mutated. A conforming
// reducer is safe to call from any number of goroutines without
// synchronization.
type Reducer func(domain.State, domain.Action) domain.State
