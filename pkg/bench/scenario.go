package bench

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// scenarioFile is the YAML layout of a scenario file:
//
//	scenarios:
//	  - name: hello-2k
//	    capacity: 2048
//	    rounds: 100
//	    appends: 100
//	    chunk: hello
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a YAML scenario file. Missing fields fall back to
// DefaultScenario values; unnamed scenarios are numbered.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: read %s: %w", path, err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bench: parse %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("bench: %s contains no scenarios", path)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
		f.Scenarios[i] = f.Scenarios[i].normalize()
	}
	return f.Scenarios, nil
}
