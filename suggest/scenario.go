// SPDX-License-Identifier: MIT
package suggest

import (
	"fmt"
	"os"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/vector"
	"gopkg.in/yaml.v3"
)

// ConstraintSpec is the YAML-facing description of a single constraint.
// Exactly one of Box/Halfspace/Collision must be non-nil; building
// validates this and rejects ambiguous or empty specs.
type ConstraintSpec struct {
	Box       *BoxSpec       `yaml:"box,omitempty"`
	Halfspace *HalfspaceSpec `yaml:"halfspace,omitempty"`
	Collision *CollisionSpec `yaml:"collision,omitempty"`
}

// BoxSpec is the YAML form of a Box constraint.
type BoxSpec struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// HalfspaceSpec is the YAML form of a Halfspace constraint.
type HalfspaceSpec struct {
	Normal []float64 `yaml:"normal"`
	Bound  float64   `yaml:"bound"`
}

// CollisionSpec is the YAML form of a Collision constraint.
type CollisionSpec struct {
	Min        []float64 `yaml:"min"`
	Max        []float64 `yaml:"max"`
	Separation float64   `yaml:"separation"`
}

// Scenario is the YAML-facing description of one end-to-end suggestion
// call: a current state, a requested delta, and the constraints it must
// respect.
type Scenario struct {
	Name        string           `yaml:"name"`
	Current     []float64        `yaml:"current"`
	Delta       []float64        `yaml:"delta"`
	Constraints []ConstraintSpec `yaml:"constraints"`
}

// ScenarioFile is the top-level shape of a scenario YAML document: a named
// list of independent scenarios, loaded and run together by demo programs
// and tests.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarioFile reads and parses a scenario YAML file from disk.
func LoadScenarioFile(path string) (ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioFile{}, fmt.Errorf("suggest: reading scenario file: %w", err)
	}
	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return ScenarioFile{}, fmt.Errorf("suggest: parsing scenario file: %w", err)
	}
	return sf, nil
}

// Build constructs the concrete (current, delta, constraints) triple this
// Scenario describes, for direct use with Suggest.
func (s Scenario) Build() (vector.Vector, geom.Delta, []constraint.Constraint, error) {
	current := vector.New(s.Current...)
	delta := geom.NewDelta(vector.New(s.Delta...))

	cs := make([]constraint.Constraint, 0, len(s.Constraints))
	for i, spec := range s.Constraints {
		c, err := spec.build()
		if err != nil {
			return nil, geom.Delta{}, nil, fmt.Errorf("suggest: scenario %q constraint %d: %w", s.Name, i, err)
		}
		cs = append(cs, c)
	}
	return current, delta, cs, nil
}

func (spec ConstraintSpec) build() (constraint.Constraint, error) {
	count := 0
	if spec.Box != nil {
		count++
	}
	if spec.Halfspace != nil {
		count++
	}
	if spec.Collision != nil {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of box/halfspace/collision must be set, got %d", count)
	}

	switch {
	case spec.Box != nil:
		return constraint.NewBox(vector.New(spec.Box.Min...), vector.New(spec.Box.Max...))
	case spec.Halfspace != nil:
		return constraint.NewHalfspace(vector.New(spec.Halfspace.Normal...), spec.Halfspace.Bound)
	default:
		return constraint.NewCollision(vector.New(spec.Collision.Min...), vector.New(spec.Collision.Max...), spec.Collision.Separation)
	}
}
