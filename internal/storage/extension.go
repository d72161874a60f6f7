package storage

import (
	"encoding/json"
	"fmt"
)

// ExtensionState carries opaque metadata alongside a message's text, such
// as sound cues or color hints. Values stay raw JSON; the render pipeline
// passes them through without inspecting them.
type ExtensionState map[string]json.RawMessage

// Set stores v under key after marshalling it to JSON.
func (e *ExtensionState) Set(k string, v any) error {
	if *e == nil {
		*e = ExtensionState{}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", k, err)
	}

	(*e)[k] = json.RawMessage(b)
	return nil
}

// Get unmarshals the extension value at key into out.
// Returns (found=false, nil) if not present.
func (e ExtensionState) Get(key string, out any) (bool, error) {
	if e == nil {
		return false, nil
	}

	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", key, err)
	}
	return true, nil
}

// Merge returns a copy of e with overrides layered on top. A key present
// in both takes the override's value. Returns nil when both are empty.
func (e ExtensionState) Merge(overrides ExtensionState) ExtensionState {
	if len(e) == 0 && len(overrides) == 0 {
		return nil
	}

	merged := make(ExtensionState, len(e)+len(overrides))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
