package sim

import "fmt"

// Population identifies the customer mix a configuration produces.
type Population string

const (
	// PopulationBasic: no balking config; every customer always joins.
	PopulationBasic Population = "basic"
	// PopulationSelfish: a single cost; every customer balks on its own
	// expected-wait estimate.
	PopulationSelfish Population = "selfish"
	// PopulationMixed: selfish with probability p, optimal (Naor
	// threshold) otherwise.
	PopulationMixed Population = "mixed"
)

// BalkingConfig selects strategic behavior. A nil BalkingConfig means a
// basic population. Cost alone means a homogeneous selfish population.
// Cost plus SelfishProbability means a mixed selfish/optimal population.
type BalkingConfig struct {
	// Cost is the value of service, in the same time unit as service
	// time. Must be > 0.
	Cost float64 `yaml:"cost"`
	// SelfishProbability, when set, is the probability a generated
	// customer is selfish; the rest are optimal. Must be in [0, 1].
	SelfishProbability *float64 `yaml:"selfish_probability,omitempty"`
}

// Config holds every recognized simulation option.
type Config struct {
	ArrivalRate float64        `yaml:"arrival_rate"` // lambda, must be > 0
	ServiceRate float64        `yaml:"service_rate"` // mu, must be > 0
	Horizon     float64        `yaml:"horizon"`      // total simulated time, must be > 0
	Warmup      float64        `yaml:"warmup"`       // observations before this are excluded, >= 0
	Seed        int64          `yaml:"seed"`
	Balking     *BalkingConfig `yaml:"balking,omitempty"`
}

// Population derives the customer mix from the balking configuration.
func (c Config) Population() Population {
	switch {
	case c.Balking == nil:
		return PopulationBasic
	case c.Balking.SelfishProbability == nil:
		return PopulationSelfish
	default:
		return PopulationMixed
	}
}

// Validate checks every recognized option, failing fast before any loop
// runs. The stability check for optimal populations lives in NaorThreshold,
// invoked from NewSimulator.
func (c Config) Validate() error {
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidParameter, c.ArrivalRate)
	}
	if c.ServiceRate <= 0 {
		return fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidParameter, c.ServiceRate)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be > 0, got %v", ErrInvalidParameter, c.Horizon)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must be >= 0, got %v", ErrInvalidParameter, c.Warmup)
	}
	if c.Balking != nil {
		if c.Balking.Cost <= 0 {
			return fmt.Errorf("%w: cost of balking must be > 0, got %v", ErrInvalidParameter, c.Balking.Cost)
		}
		if p := c.Balking.SelfishProbability; p != nil && (*p < 0 || *p > 1) {
			return fmt.Errorf("%w: selfish probability must be in [0, 1], got %v", ErrInvalidParameter, *p)
		}
	}
	return nil
}
