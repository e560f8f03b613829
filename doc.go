/*
Package tally is a minimal unidirectional state container: a pure transition
function ("reducer") that computes a new counter state from the current state
and an action describing an intended change.

It exists as a teaching-sized core for the pattern used by larger
state-management systems: the host owns the state value, passes it into each
transition, and receives the next value back. The reducer itself never
mutates, never errors, and never performs I/O.

# Key Properties

  - Total: every (state, action) pair yields a well-formed state. Unrecognized
    action types return the input state unchanged — there is no error path.
  - Pure: identical inputs always yield an equal output; neither argument is
    mutated; nothing else is observable.
  - Concurrency-safe by construction: with no shared mutable state, the
    function can be called from any number of goroutines without
    synchronization.

# Usage

The caller threads the state explicitly:

	package main

	import (
		"fmt"

		"github.com/aretw0/tally"
		"github.com/aretw0/tally/pkg/domain"
	)

	func main() {
		state := domain.NewState()
		fmt.Println(state) // { count: 0 }

		state = tally.Reduce(state, domain.Action{Type: domain.ActionIncrement})
		fmt.Println(state) // { count: 1 }

		state = tally.Reduce(state, domain.Action{Type: domain.ActionDecrement})
		fmt.Println(state) // { count: 0 }
	}

The cmd/tally CLI wraps the same function in a walkthrough (`tally run`), a
YAML script replayer (`tally replay`), and a stateless HTTP API
(`tally serve`).
*/
package tally
