package suggest_test

import (
	"testing"

	"github.com/katalvlaran/newton/suggest"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleScenarioYAML = `
scenarios:
  - name: clamp-to-box
    current: [50, 50]
    delta: [100, 0]
    constraints:
      - box:
          min: [0, 0]
          max: [100, 100]
  - name: avoid-obstacle
    current: [30, 50]
    delta: [20, 0]
    constraints:
      - box:
          min: [0, 0]
          max: [100, 100]
      - collision:
          min: [40, 40]
          max: [60, 60]
          separation: 0
`

func TestScenarioFileParsesAndBuilds(t *testing.T) {
	var sf suggest.ScenarioFile
	require.NoError(t, yaml.Unmarshal([]byte(sampleScenarioYAML), &sf))
	require.Len(t, sf.Scenarios, 2)

	for _, sc := range sf.Scenarios {
		current, delta, constraints, err := sc.Build()
		require.NoError(t, err)
		resp, err := suggest.Suggest(current, delta, constraints)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Suggestions)
	}
}

func TestConstraintSpecRejectsAmbiguousVariant(t *testing.T) {
	sf := suggest.ScenarioFile{
		Scenarios: []suggest.Scenario{
			{
				Name:    "ambiguous",
				Current: []float64{0, 0},
				Delta:   []float64{1, 1},
				Constraints: []suggest.ConstraintSpec{
					{
						Box:       &suggest.BoxSpec{Min: []float64{0, 0}, Max: []float64{1, 1}},
						Halfspace: &suggest.HalfspaceSpec{Normal: []float64{1, 0}, Bound: 1},
					},
				},
			},
		},
	}
	_, _, _, err := sf.Scenarios[0].Build()
	require.Error(t, err)
}
