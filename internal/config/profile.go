// Package config loads the PrintProfile record consumed read-only by the
// slicing core. Only LayerHeight and FirstLayerHeight influence slicing;
// every other field is opaque passthrough for the G-code emitter.
package config

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/krasin/goslicer/internal/sliceerr"
)

// Profile is the print configuration consumed by the orchestrator and,
// downstream, the G-code emitter. Extra carries every field the core does
// not interpret (speeds, temperatures, G-code templates, infill settings)
// untouched.
type Profile struct {
	LayerHeight      float64        `yaml:"layer_height"`
	FirstLayerHeight float64        `yaml:"first_layer_height"`
	Extra            map[string]any `yaml:",inline"`
}

// Load parses a YAML print profile document.
func Load(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the only two fields slicing depends on. All other
// fields are accepted as-is; they are not this core's concern.
func (p *Profile) Validate() error {
	if p.LayerHeight <= 0 {
		return sliceerr.New(sliceerr.InvalidConfig, "layer_height must be > 0")
	}
	if p.FirstLayerHeight <= 0 {
		return sliceerr.New(sliceerr.InvalidConfig, "first_layer_height must be > 0")
	}
	return nil
}
