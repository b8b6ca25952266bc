package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemArrivals is the RNG subsystem for interarrival times.
	// Uses the master seed directly.
	SubsystemArrivals = "arrivals"

	// SubsystemServices is the RNG subsystem for service durations.
	SubsystemServices = "services"

	// SubsystemPolicy is the RNG subsystem for the selfish/optimal draw in
	// mixed populations. Kept separate so a mixed run and a basic run with
	// the same seed see the same arrival and service processes.
	SubsystemPolicy = "policy"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemArrivals: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine;
// parallel replications each own their own PartitionedRNG.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemArrivals {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === ExpSampler ===

// ExpSampler produces independent exponentially-distributed durations with
// the given rate parameter (mean 1/rate). Samples are strictly positive.
type ExpSampler struct {
	rate float64
	rng  *rand.Rand
}

// NewExpSampler creates an ExpSampler. The rate must be strictly positive.
func NewExpSampler(rate float64, rng *rand.Rand) (*ExpSampler, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: exponential rate must be > 0, got %v", ErrInvalidParameter, rate)
	}
	return &ExpSampler{rate: rate, rng: rng}, nil
}

// Sample draws the next duration from the stream.
func (s *ExpSampler) Sample() float64 {
	return s.rng.ExpFloat64() / s.rate
}

// Rate returns the rate parameter the sampler was built with.
func (s *ExpSampler) Rate() float64 {
	return s.rate
}
