package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/netopt/sim"
)

// ModelConfig represents the full model.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ModelConfig struct {
	Version string     `yaml:"version"`
	Model   sim.Params `yaml:"model"`
}

// loadModelConfig overlays the YAML file at path onto defaults and validates
// the result. Keys missing from the file keep their default values.
func loadModelConfig(path string, defaults sim.Params) (sim.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Params{}, fmt.Errorf("read model config %s: %w", path, err)
	}

	// Parse YAML with strict field checking (typos must cause errors)
	cfg := ModelConfig{Model: defaults}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return sim.Params{}, fmt.Errorf("parse model config %s: %w", path, err)
	}
	if err := cfg.Model.Validate(); err != nil {
		return sim.Params{}, fmt.Errorf("model config %s: %w", path, err)
	}
	return cfg.Model, nil
}
