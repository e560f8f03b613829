package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tally/pkg/domain"
)

func TestNewState_StartsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), domain.NewState().Count)
}

func TestState_String(t *testing.T) {
	cases := []struct {
		count int64
		want  string
	}{
		{0, "{ count: 0 }"},
		{1, "{ count: 1 }"},
		{-12, "{ count: -12 }"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.State{Count: tc.count}.String())
	}
}

func TestState_Equal(t *testing.T) {
	assert.True(t, domain.State{Count: 4}.Equal(domain.State{Count: 4}))
	assert.False(t, domain.State{Count: 4}.Equal(domain.State{Count: 5}))
}
