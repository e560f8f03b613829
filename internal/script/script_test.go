package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tally/internal/script"
	"github.com/aretw0/tally/pkg/domain"
)

func TestParse_Basic(t *testing.T) {
	data := []byte(`
initial:
  count: 0
actions:
  - type: counter/increment
  - type: counter/decrement
`)

	s, err := script.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, int64(0), s.Initial.Count)
	require.Len(t, s.Actions, 2)
	assert.Equal(t, domain.ActionIncrement, s.Actions[0].Type)
	assert.Equal(t, domain.ActionDecrement, s.Actions[1].Type)
	assert.Nil(t, s.Actions[0].Payload)
}

func TestParse_PreservesExtraFieldsAsPayload(t *testing.T) {
	data := []byte(`
actions:
  - type: counter/increment
    by: 5
    reason: "load test"
`)

	s, err := script.Parse(data)
	require.NoError(t, err)
	require.Len(t, s.Actions, 1)

	assert.Equal(t, domain.ActionIncrement, s.Actions[0].Type)
	assert.Equal(t, 5, s.Actions[0].Payload["by"])
	assert.Equal(t, "load test", s.Actions[0].Payload["reason"])
}

func TestParse_UnknownActionTypesLoadFine(t *testing.T) {
	// Unknown types are a reducer concern (no-ops), not a load error.
	data := []byte(`
actions:
  - type: counter/reset
  - {}
`)

	s, err := script.Parse(data)
	require.NoError(t, err)
	require.Len(t, s.Actions, 2)
	assert.Equal(t, "counter/reset", s.Actions[0].Type)
	assert.Empty(t, s.Actions[1].Type)
}

func TestParse_NonZeroInitial(t *testing.T) {
	data := []byte(`
initial:
  count: -3
actions:
  - type: counter/increment
`)

	s, err := script.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), s.Initial.Count)
}

func TestParse_Errors(t *testing.T) {
	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := script.Parse([]byte("actions: [whoops"))
		assert.Error(t, err)
	})

	t.Run("EmptyActions", func(t *testing.T) {
		_, err := script.Parse([]byte("initial:\n  count: 1\n"))
		assert.ErrorIs(t, err, script.ErrNoActions)
	})

	t.Run("ScalarActionEntry", func(t *testing.T) {
		_, err := script.Parse([]byte("actions:\n  - 42\n"))
		assert.Error(t, err)
	})
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walkthrough.yaml")
	content := []byte("initial:\n  count: 0\nactions:\n  - type: counter/increment\n  - type: counter/decrement\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	s, err := script.Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Actions, 2)

	_, err = script.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
