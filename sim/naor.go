package sim

import (
	"fmt"
	"math"
)

// naorIterationCap bounds the threshold search. The expected-time recurrence
// grows roughly linearly in n for rho < 1, so any realistic cost resolves in
// a handful of iterations; the cap exists to turn a pathologically large
// cost into an error instead of an unbounded loop.
const naorIterationCap = 300000

// naorRhoEpsilon is the tolerance below which rho is treated as
// indistinguishable from 1, where the recurrence degenerates to 0/0.
const naorRhoEpsilon = 1e-12

// NaorThreshold returns the system-state count at or above which a socially
// optimal customer must balk, from Naor's 1969 paper "The Regulation of
// Queue Size by Levying Tolls".
//
// With rho = arrivalRate/serviceRate and
//
//	L(n) = (n*(1-rho) - rho*(1-rho^n)) / (1-rho)^2
//
// the threshold is the smallest n such that L(n) <= serviceRate*cost < L(n+1).
// The threshold is only defined for stable systems (rho < 1); unstable
// configurations fail with ErrUnstableSystem before any search is attempted.
func NaorThreshold(arrivalRate, serviceRate, costOfBalking float64) (int, error) {
	if arrivalRate <= 0 {
		return 0, fmt.Errorf("%w: arrival rate must be > 0, got %v", ErrInvalidParameter, arrivalRate)
	}
	if serviceRate <= 0 {
		return 0, fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidParameter, serviceRate)
	}
	if costOfBalking <= 0 {
		return 0, fmt.Errorf("%w: cost of balking must be > 0, got %v", ErrInvalidParameter, costOfBalking)
	}
	if arrivalRate >= serviceRate {
		return 0, fmt.Errorf("%w: arrival rate %v >= service rate %v (rho >= 1)",
			ErrUnstableSystem, arrivalRate, serviceRate)
	}

	rho := arrivalRate / serviceRate
	if math.Abs(rho-1) < naorRhoEpsilon {
		return 0, fmt.Errorf("%w: traffic intensity %v indistinguishable from 1", ErrDomain, rho)
	}

	// Midpoint of the inequality from Naor's paper.
	center := serviceRate * costOfBalking

	lhs := naorL(0, rho)
	for n := 0; n < naorIterationCap; n++ {
		rhs := naorL(n+1, rho)
		if lhs <= center && center < rhs {
			return n, nil
		}
		lhs = rhs
	}
	return 0, fmt.Errorf("%w: no n within %d iterations brackets mu*c = %v",
		ErrNonConvergence, naorIterationCap, center)
}

// naorL is the expected-time recurrence L(n) from Naor's paper.
func naorL(n int, rho float64) float64 {
	oneMinusRho := 1 - rho
	return (float64(n)*oneMinusRho - rho*(1-math.Pow(rho, float64(n)))) / (oneMinusRho * oneMinusRho)
}
