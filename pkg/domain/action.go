package domain

// Action describes an intended state change, identified by a Type
// discriminator. Actions are transient values: constructed right before
// dispatch, never stored.
//
// Payload carries any extra fields an action may declare. The counter action
// set does not read it, but the shape must admit payloads so new action types
// can be added without changing the wire format.
type Action struct {
	Type    string         `json:"type" yaml:"type"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Recognized action types, namespaced "<slice>/<verb>".
const (
	// ActionIncrement raises the counter by one.
	ActionIncrement = "counter/increment"

	// ActionDecrement lowers the counter by one.
	ActionDecrement = "counter/decrement"
)

// Step pairs an applied action with the state it produced. A trace starts
// with a step holding the initial state and a zero Action.
type Step struct {
	Action Action `json:"action,omitzero"`
	State  State  `json:"state"`
}
