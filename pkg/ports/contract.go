package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tally/pkg/domain"
)

// RunReducerContract is a reusable test suite that verifies if a reducer
// complies with the Reducer contract: totality, identity on unrecognized
// action types, and non-mutation of inputs.
func RunReducerContract(t *testing.T, reduce Reducer) {
	t.Helper()

	t.Run("Increment", func(t *testing.T) {
		for _, n := range []int64{-3, -1, 0, 1, 42} {
			next := reduce(domain.State{Count: n}, domain.Action{Type: domain.ActionIncrement})
			assert.Equal(t, n+1, next.Count, "increment from %d", n)
		}
	})

	t.Run("Decrement", func(t *testing.T) {
		for _, n := range []int64{-3, -1, 0, 1, 42} {
			next := reduce(domain.State{Count: n}, domain.Action{Type: domain.ActionDecrement})
			assert.Equal(t, n-1, next.Count, "decrement from %d", n)
		}
	})

	t.Run("UnknownTypeIsIdentity", func(t *testing.T) {
		s := domain.State{Count: 7}
		for _, typ := range []string{"", "counter/reset", "bogus", "COUNTER/INCREMENT"} {
			next := reduce(s, domain.Action{Type: typ})
			require.True(t, next.Equal(s), "type %q must be a no-op", typ)
		}
	})

	t.Run("UnknownTypeIsIdempotent", func(t *testing.T) {
		s := domain.State{Count: -2}
		for i := 0; i < 10; i++ {
			s = reduce(s, domain.Action{Type: "counter/unknown"})
		}
		assert.Equal(t, int64(-2), s.Count)
	})

	t.Run("DoesNotMutateInputs", func(t *testing.T) {
		s := domain.State{Count: 5}
		a := domain.Action{Type: domain.ActionIncrement, Payload: map[string]any{"by": 3}}
		_ = reduce(s, a)
		assert.Equal(t, int64(5), s.Count)
		assert.Equal(t, domain.ActionIncrement, a.Type)
		assert.Equal(t, map[string]any{"by": 3}, a.Payload)
	})

	t.Run("Deterministic", func(t *testing.T) {
		s := domain.State{Count: 11}
		a := domain.Action{Type: domain.ActionDecrement}
		first := reduce(s, a)
		second := reduce(s, a)
		assert.True(t, first.Equal(second))
	})
}
