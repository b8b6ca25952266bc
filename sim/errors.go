package sim

import "errors"

// Setup error taxonomy. All of these surface at configuration time, before
// the event loop starts; nothing inside the loop can fail. Callers match
// with errors.Is.
var (
	// ErrInvalidParameter reports a non-positive rate, horizon, or cost.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnstableSystem reports arrival_rate >= service_rate in a
	// configuration that requires the Naor threshold. The threshold is
	// only defined for traffic intensity rho < 1.
	ErrUnstableSystem = errors.New("unstable system")

	// ErrDomain reports a traffic intensity indistinguishable from 1,
	// where the closed form of Naor's recurrence degenerates to 0/0.
	ErrDomain = errors.New("domain error")

	// ErrNonConvergence reports that the threshold search exhausted its
	// iteration cap (pathologically large cost relative to the service
	// rate).
	ErrNonConvergence = errors.New("threshold search did not converge")
)
