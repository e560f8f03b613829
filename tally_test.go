package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
)

func TestFacade_WalkthroughScenario(t *testing.T) {
	// Starting at zero, increment then decrement lands back at zero with an
	// intermediate count of one.
	state := domain.NewState()
	assert.Equal(t, "{ count: 0 }", state.String())

	state = tally.Reduce(state, domain.Action{Type: domain.ActionIncrement})
	assert.Equal(t, "{ count: 1 }", state.String())

	state = tally.Reduce(state, domain.Action{Type: domain.ActionDecrement})
	assert.Equal(t, "{ count: 0 }", state.String())
}

func TestFacade_Apply(t *testing.T) {
	final := tally.Apply(domain.State{Count: 10},
		domain.Action{Type: domain.ActionDecrement},
		domain.Action{Type: "counter/unknown"},
		domain.Action{Type: domain.ActionDecrement},
	)
	assert.Equal(t, int64(8), final.Count)
}

func TestFacade_Trace(t *testing.T) {
	steps := tally.Trace(domain.NewState(), domain.Action{Type: domain.ActionIncrement})
	require.Len(t, steps, 2)
	assert.Equal(t, int64(0), steps[0].State.Count)
	assert.Equal(t, int64(1), steps[1].State.Count)
}

func TestFacade_UnknownActionIsIdentity(t *testing.T) {
	s := domain.State{Count: -4}
	next := tally.Reduce(s, domain.Action{Type: "definitely/not-real"})
	assert.True(t, next.Equal(s))
}
