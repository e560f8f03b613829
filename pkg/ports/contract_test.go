package ports_test

import (
	"testing"

	"github.com/aretw0/tally/internal/runtime"
	"github.com/aretw0/tally/pkg/ports"
)

func TestCounterReducer_Contract(t *testing.T) {
	ports.RunReducerContract(t, runtime.Reduce)
}
