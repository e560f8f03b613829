// Package script loads replay scripts: YAML documents describing a starting
// state and a sequence of actions to fold over it.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tally/pkg/domain"
)

// ErrNoActions marks a script whose action list is missing or empty.
var ErrNoActions = errors.New("script declares no actions")

// Script is a parsed replay script.
type Script struct {
	Initial domain.State
	Actions []domain.Action
}

// rawAction decodes one action entry. The "type" key becomes the
// discriminator; every other top-level key is preserved into the payload so
// scripts written for a future action set still load.
type rawAction struct {
	action domain.Action
}

func (r *rawAction) UnmarshalYAML(value *yaml.Node) error {
	var fields map[string]any
	if err := value.Decode(&fields); err != nil {
		return err
	}

	typ, ok := fields["type"].(string)
	if !ok {
		// Missing or non-string type: loads as an empty discriminator,
		// which the reducer treats as a no-op. Scripts are not validated
		// beyond being well-formed YAML.
		typ = ""
	}
	delete(fields, "type")

	r.action = domain.Action{Type: typ}
	if len(fields) > 0 {
		r.action.Payload = fields
	}
	return nil
}

type rawScript struct {
	Initial domain.State `yaml:"initial"`
	Actions []rawAction  `yaml:"actions"`
}

// Parse decodes a replay script from YAML bytes.
func Parse(data []byte) (*Script, error) {
	var raw rawScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(raw.Actions) == 0 {
		return nil, ErrNoActions
	}

	s := &Script{
		Initial: raw.Initial,
		Actions: make([]domain.Action, 0, len(raw.Actions)),
	}
	for _, ra := range raw.Actions {
		s.Actions = append(s.Actions, ra.action)
	}
	return s, nil
}

// Load reads and parses a replay script from disk.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return Parse(data)
}
