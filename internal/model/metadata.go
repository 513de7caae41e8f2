package model

import "encoding/json"

// CellMetadata is the typed view of a cell's persisted metadata.
//
// Historically this was a free-form string-keyed map read with duck-typed
// path lookups; the fields the editor actually cares about are now explicit
// optional fields, with legacy snake_case spellings accepted on load
// (migrated to the canonical fields by Normalize). Everything else is kept
// verbatim in Extra so saving a notebook never drops foreign metadata.
type CellMetadata struct {
	Version int

	InputHidden *bool
	// HideInput is the legacy spelling of InputHidden ("hide_input").
	// Kept separate because visibility treats them as independent signals.
	HideInput      *bool
	OutputHidden   *bool
	OutputExpanded *bool
	Tags           []string

	Extra map[string]any
}

const metadataVersion = 1

// reserved keys lifted out of Extra on load and written back on save.
var metadataKeys = map[string]bool{
	"version":        true,
	"inputHidden":    true,
	"input_hidden":   true,
	"hide_input":     true,
	"outputHidden":   true,
	"output_hidden":  true,
	"outputExpanded": true,
	"outputs_hidden": true,
	"tags":           true,
}

// Normalize applies the schema default policy: missing Version defaults to
// the current version and nil Tags stays nil (absent, not empty).
func (m *CellMetadata) Normalize() {
	if m.Version == 0 {
		m.Version = metadataVersion
	}
}

// HasTag reports membership in the cell's tag set.
func (m CellMetadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m CellMetadata) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.Version != 0 {
		out["version"] = m.Version
	}
	if m.InputHidden != nil {
		out["inputHidden"] = *m.InputHidden
	}
	if m.HideInput != nil {
		out["hide_input"] = *m.HideInput
	}
	if m.OutputHidden != nil {
		out["outputHidden"] = *m.OutputHidden
	}
	if m.OutputExpanded != nil {
		out["outputExpanded"] = *m.OutputExpanded
	}
	if len(m.Tags) > 0 {
		out["tags"] = m.Tags
	}
	return json.Marshal(out)
}

func (m *CellMetadata) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = CellMetadata{}

	if v, ok := raw["version"]; ok {
		_ = json.Unmarshal(v, &m.Version)
	}
	m.InputHidden = boolField(raw, "inputHidden", "input_hidden")
	m.HideInput = boolField(raw, "hide_input")
	m.OutputHidden = boolField(raw, "outputHidden", "output_hidden", "outputs_hidden")
	m.OutputExpanded = boolField(raw, "outputExpanded")
	if v, ok := raw["tags"]; ok {
		_ = json.Unmarshal(v, &m.Tags)
	}

	for k, v := range raw {
		if metadataKeys[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			continue
		}
		if m.Extra == nil {
			m.Extra = map[string]any{}
		}
		m.Extra[k] = val
	}

	m.Normalize()
	return nil
}

// boolField returns the first key present that parses as a bool.
// Non-bool values (a common source of silent typos in the old duck-typed
// metadata) are ignored rather than treated as truthy.
func boolField(raw map[string]json.RawMessage, keys ...string) *bool {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			continue
		}
		return &b
	}
	return nil
}
