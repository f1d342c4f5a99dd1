package config

import (
	"strings"
	"testing"
)

func TestLoadParsesKnownAndExtraFields(t *testing.T) {
	doc := `
layer_height: 0.2
first_layer_height: 0.3
nozzle_temp: 210
bed_temp: 60
`
	p, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.LayerHeight != 0.2 {
		t.Fatalf("LayerHeight = %v, want 0.2", p.LayerHeight)
	}
	if p.FirstLayerHeight != 0.3 {
		t.Fatalf("FirstLayerHeight = %v, want 0.3", p.FirstLayerHeight)
	}
	if p.Extra["nozzle_temp"] != 210 {
		t.Fatalf("Extra[nozzle_temp] = %v, want 210", p.Extra["nozzle_temp"])
	}
	if p.Extra["bed_temp"] != 60 {
		t.Fatalf("Extra[bed_temp] = %v, want 60", p.Extra["bed_temp"])
	}
}

func TestValidateRejectsNonPositiveLayerHeight(t *testing.T) {
	p := &Profile{LayerHeight: 0, FirstLayerHeight: 0.2}
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for layer_height <= 0")
	}
}

func TestValidateRejectsNonPositiveFirstLayerHeight(t *testing.T) {
	p := &Profile{LayerHeight: 0.2, FirstLayerHeight: -1}
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for first_layer_height <= 0")
	}
}

func TestValidateAcceptsWellFormedProfile(t *testing.T) {
	p := &Profile{LayerHeight: 0.2, FirstLayerHeight: 0.2}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
