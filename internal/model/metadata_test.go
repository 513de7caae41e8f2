package model

import (
	"encoding/json"
	"testing"
)

func TestMetadataLegacyKeys(t *testing.T) {
	var m CellMetadata
	if err := json.Unmarshal([]byte(`{"hide_input":true,"output_hidden":false,"tags":["parameters"]}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.HideInput == nil || !*m.HideInput {
		t.Fatalf("expected hide_input=true to populate HideInput")
	}
	if m.InputHidden != nil {
		t.Fatalf("hide_input must not populate InputHidden; they are independent signals")
	}
	if m.OutputHidden == nil || *m.OutputHidden {
		t.Fatalf("expected output_hidden=false to populate OutputHidden=false")
	}
	if !m.HasTag("parameters") {
		t.Fatalf("expected tags to round in")
	}
	if m.Version != metadataVersion {
		t.Fatalf("Normalize should default Version; got %d", m.Version)
	}
}

func TestMetadataNonBoolValuesIgnored(t *testing.T) {
	var m CellMetadata
	if err := json.Unmarshal([]byte(`{"inputHidden":"yes","outputExpanded":1}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.InputHidden != nil || m.OutputExpanded != nil {
		t.Fatalf("non-bool values must be ignored, not treated as truthy")
	}
}

func TestMetadataExtraPreserved(t *testing.T) {
	in := []byte(`{"inputHidden":true,"kernelspec":{"name":"python3"},"collapsed":true}`)
	var m CellMetadata
	if err := json.Unmarshal(in, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Extra["collapsed"] != true {
		t.Fatalf("expected foreign keys preserved in Extra; got %v", m.Extra)
	}
	if _, ok := m.Extra["inputHidden"]; ok {
		t.Fatalf("reserved keys must not leak into Extra")
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if back["inputHidden"] != true {
		t.Fatalf("expected canonical key on save; got %v", back)
	}
	if _, ok := back["kernelspec"]; !ok {
		t.Fatalf("expected foreign metadata written back; got %v", back)
	}
}
