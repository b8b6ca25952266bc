package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/mm1-sim/mm1-sim/sim"
)

// LoadScenario reads a YAML scenario file into a validated sim.Config.
//
// Example:
//
//	arrival_rate: 3
//	service_rate: 2
//	horizon: 1000
//	warmup: 50
//	seed: 42
//	balking:
//	  cost: 2.0
//	  selfish_probability: 0.4
func LoadScenario(path string) (sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Config{}, fmt.Errorf("reading scenario file: %w", err)
	}

	var cfg sim.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return sim.Config{}, fmt.Errorf("parsing scenario file: %w", err)
	}

	return cfg, cfg.Validate()
}
