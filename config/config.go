// Package config deserializes the DWA planner configuration format from a
// YAML blob, matching spec.md §6's "configuration loading from disk
// abstracted as a value constructor from a text blob." Unknown fields are
// rejected, and the two-element-tuple shorthand for Velocity/Acceleration
// is decoded the same way the original `#[serde(from = "[f64; 2]")]`
// attribute did.
package config

import (
	"bytes"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"go.viam.com/nav/dwaplanner"
	"go.viam.com/nav/naverrors"
)

// EnvVarConfigPath is the environment variable cmd/navd checks for a
// planner configuration path when -f/--config-file is not given.
const EnvVarConfigPath = "PLANNER_CONFIG_PATH"

// velocityPair decodes a two-element `[x, theta]` sequence into a
// dwaplanner.Velocity; any other shape, including an `{x: ..., theta: ...}`
// mapping, is a parse error.
type velocityPair dwaplanner.Velocity

func (v *velocityPair) UnmarshalYAML(node *yaml.Node) error {
	var pair [2]float64
	if err := node.Decode(&pair); err != nil {
		return naverrors.Parsef("velocity/acceleration must be a two-element [linear, angular] tuple: %v", err)
	}
	v.X, v.Theta = pair[0], pair[1]
	return nil
}

type limits struct {
	MaxVelocity velocityPair `yaml:"max_velocity"`
	MaxAccel    velocityPair `yaml:"max_accel"`
	MinVelocity velocityPair `yaml:"min_velocity"`
	MinAccel    velocityPair `yaml:"min_accel"`
}

func (l limits) toLimits() dwaplanner.Limits {
	return dwaplanner.Limits{
		MaxVelocity: dwaplanner.Velocity(l.MaxVelocity),
		MaxAccel:    dwaplanner.Acceleration(l.MaxAccel),
		MinVelocity: dwaplanner.Velocity(l.MinVelocity),
		MinAccel:    dwaplanner.Acceleration(l.MinAccel),
	}
}

type dwaPlannerSection struct {
	Limits             limits             `yaml:"limits"`
	CostNameWeight     map[string]float64 `yaml:"cost_name_weight"`
	ControllerDt       float64            `yaml:"controller_dt"`
	SimulationDuration float64            `yaml:"simulation_duration"`
	NumVelSample       int                `yaml:"num_vel_sample"`
}

// document is the top-level YAML shape: a single "DwaPlanner" key.
type document struct {
	DwaPlanner dwaPlannerSection `yaml:"DwaPlanner"`
}

// DwaPlannerConfig is the deserialized, ready-to-use planner configuration.
// Weights is sorted by name so the resulting
// []dwaplanner.NamedWeight is deterministic across loads of the same file,
// matching dwaplanner's own no-maps-for-scoring-order rule.
type DwaPlannerConfig struct {
	Limits             dwaplanner.Limits
	Weights            []dwaplanner.NamedWeight
	ControllerDt       float64
	SimulationDuration float64
	NumVelSample       int
}

// ToPlanner builds a *dwaplanner.DwaPlanner from the decoded configuration.
func (c DwaPlannerConfig) ToPlanner() *dwaplanner.DwaPlanner {
	return dwaplanner.New(c.Limits, c.ControllerDt, c.SimulationDuration, c.NumVelSample, c.Weights)
}

// Parse decodes a DwaPlannerConfig from a YAML blob. Unknown fields at any
// level are rejected via strict decoding, matching the original's
// `#[serde(deny_unknown_fields)]`.
func Parse(source []byte) (DwaPlannerConfig, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(source))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return DwaPlannerConfig{}, naverrors.Parsef("malformed planner config: %v", err)
	}

	section := doc.DwaPlanner
	names := make([]string, 0, len(section.CostNameWeight))
	for name := range section.CostNameWeight {
		names = append(names, name)
	}
	sort.Strings(names)

	weights := make([]dwaplanner.NamedWeight, 0, len(names))
	for _, name := range names {
		weights = append(weights, dwaplanner.NamedWeight{Name: name, Weight: section.CostNameWeight[name]})
	}

	return DwaPlannerConfig{
		Limits:             section.Limits.toLimits(),
		Weights:            weights,
		ControllerDt:       section.ControllerDt,
		SimulationDuration: section.SimulationDuration,
		NumVelSample:       section.NumVelSample,
	}, nil
}

// LoadFromFile reads and parses a planner configuration from path.
func LoadFromFile(path string) (DwaPlannerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DwaPlannerConfig{}, naverrors.IO(err)
	}
	return Parse(data)
}

// LoadFromEnv reads the path named by PLANNER_CONFIG_PATH and parses it.
func LoadFromEnv() (DwaPlannerConfig, error) {
	path := os.Getenv(EnvVarConfigPath)
	if path == "" {
		return DwaPlannerConfig{}, naverrors.Other(EnvVarConfigPath + " is not set")
	}
	return LoadFromFile(path)
}
