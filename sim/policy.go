package sim

import "fmt"

// PolicyKind tags the decision rule a customer applies on arrival.
type PolicyKind string

const (
	// PolicyBasic always joins.
	PolicyBasic PolicyKind = "basic"
	// PolicySelfish joins iff its own expected time through service is
	// below its cost of balking.
	PolicySelfish PolicyKind = "selfish"
	// PolicyOptimal joins iff the observed system state is below the Naor
	// threshold.
	PolicyOptimal PolicyKind = "optimal"
)

// Decision is the outcome of a policy consultation.
type Decision int

const (
	Join Decision = iota
	Balk
)

func (d Decision) String() string {
	if d == Balk {
		return "balk"
	}
	return "join"
}

// Policy is a tagged decision rule plus the parameters its kind needs.
// The zero fields of kinds that don't apply are ignored: basic uses nothing,
// selfish uses ServiceRate and CostOfBalking, optimal uses Threshold.
type Policy struct {
	Kind PolicyKind

	ServiceRate   float64 // selfish: denominator of the expected-wait estimate
	CostOfBalking float64 // selfish: individually assigned value of service

	// Threshold is Naor's threshold, computed once per run and shared by
	// every optimal customer in it.
	Threshold int
}

// Decide returns Join or Balk given the system state (queue length plus
// server occupancy) observed at the decision instant. The deciding customer
// must not yet be counted in systemState.
//
// The selfish estimate (state+1)/serviceRate is taken as-is from Naor's
// framing; its exact form is what makes the selfish and optimal populations
// comparable.
func (p Policy) Decide(systemState int) Decision {
	switch p.Kind {
	case PolicySelfish:
		if float64(systemState+1)/p.ServiceRate < p.CostOfBalking {
			return Join
		}
		return Balk
	case PolicyOptimal:
		if systemState < p.Threshold {
			return Join
		}
		return Balk
	default:
		return Join
	}
}

func (p Policy) String() string {
	switch p.Kind {
	case PolicySelfish:
		return fmt.Sprintf("%s(cost=%v)", p.Kind, p.CostOfBalking)
	case PolicyOptimal:
		return fmt.Sprintf("%s(threshold=%d)", p.Kind, p.Threshold)
	default:
		return string(p.Kind)
	}
}
