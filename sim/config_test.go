package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestConfig_Population(t *testing.T) {
	basic := Config{ArrivalRate: 1, ServiceRate: 2, Horizon: 10}
	assert.Equal(t, PopulationBasic, basic.Population())

	selfish := basic
	selfish.Balking = &BalkingConfig{Cost: 1}
	assert.Equal(t, PopulationSelfish, selfish.Population())

	mixed := basic
	mixed.Balking = &BalkingConfig{Cost: 1, SelfishProbability: floatPtr(0.3)}
	assert.Equal(t, PopulationMixed, mixed.Population())
}

func TestConfig_Validate_Accepts(t *testing.T) {
	cfg := Config{ArrivalRate: 3, ServiceRate: 2, Horizon: 1000, Warmup: 50, Seed: 42}
	assert.NoError(t, cfg.Validate())

	cfg.Balking = &BalkingConfig{Cost: 0.5, SelfishProbability: floatPtr(1)}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_Rejects(t *testing.T) {
	valid := Config{ArrivalRate: 3, ServiceRate: 2, Horizon: 1000}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero arrival rate", func(c *Config) { c.ArrivalRate = 0 }},
		{"negative service rate", func(c *Config) { c.ServiceRate = -1 }},
		{"zero horizon", func(c *Config) { c.Horizon = 0 }},
		{"negative warmup", func(c *Config) { c.Warmup = -1 }},
		{"zero cost", func(c *Config) { c.Balking = &BalkingConfig{Cost: 0} }},
		{"probability above one", func(c *Config) {
			c.Balking = &BalkingConfig{Cost: 1, SelfishProbability: floatPtr(1.5)}
		}},
		{"negative probability", func(c *Config) {
			c.Balking = &BalkingConfig{Cost: 1, SelfishProbability: floatPtr(-0.1)}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidParameter)
		})
	}
}

func TestNewSimulator_UnstableMixedPopulation_FailsFast(t *testing.T) {
	// Scenario D: lambda=5, mu=1 with an optimal population must fail at
	// setup, before the loop starts.
	cfg := Config{
		ArrivalRate: 5,
		ServiceRate: 1,
		Horizon:     100,
		Balking:     &BalkingConfig{Cost: 2, SelfishProbability: floatPtr(0.5)},
	}
	_, err := NewSimulator(cfg)
	assert.ErrorIs(t, err, ErrUnstableSystem)
}

func TestNewSimulator_UnstableSelfishPopulation_Allowed(t *testing.T) {
	// Homogeneous selfish populations need no threshold and may be
	// unstable (balking keeps the system finite).
	cfg := Config{
		ArrivalRate: 2,
		ServiceRate: 1,
		Horizon:     100,
		Balking:     &BalkingConfig{Cost: 3},
	}
	s, err := NewSimulator(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, s)
}
