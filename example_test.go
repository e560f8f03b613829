package tally_test

import (
	"fmt"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
)

// Example reproduces the canonical console walkthrough: the host owns the
// state value and threads it through each transition.
func Example() {
	state := domain.NewState()
	fmt.Println(state)

	state = tally.Reduce(state, domain.Action{Type: domain.ActionIncrement})
	fmt.Println(state)

	state = tally.Reduce(state, domain.Action{Type: domain.ActionDecrement})
	fmt.Println(state)

	// Output:
	// { count: 0 }
	// { count: 1 }
	// { count: 0 }
}
