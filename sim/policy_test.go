package sim

import "testing"

func TestPolicyBasic_AlwaysJoins(t *testing.T) {
	p := Policy{Kind: PolicyBasic}
	for _, state := range []int{0, 1, 5, 1000} {
		if d := p.Decide(state); d != Join {
			t.Errorf("state %d: got %v, want join", state, d)
		}
	}
}

func TestPolicySelfish_JoinsBelowEstimate(t *testing.T) {
	// Expected time through service is (state+1)/mu; join iff strictly
	// below the cost.
	p := Policy{Kind: PolicySelfish, ServiceRate: 2, CostOfBalking: 1.5}

	// (0+1)/2 = 0.5 < 1.5, (1+1)/2 = 1 < 1.5
	for _, state := range []int{0, 1} {
		if d := p.Decide(state); d != Join {
			t.Errorf("state %d: got %v, want join", state, d)
		}
	}
	// (2+1)/2 = 1.5 is NOT strictly less than 1.5
	if d := p.Decide(2); d != Balk {
		t.Errorf("boundary state 2: got %v, want balk", d)
	}
	if d := p.Decide(10); d != Balk {
		t.Errorf("state 10: got %v, want balk", d)
	}
}

func TestPolicyOptimal_JoinsBelowThreshold(t *testing.T) {
	p := Policy{Kind: PolicyOptimal, Threshold: 3}

	for state := 0; state < 3; state++ {
		if d := p.Decide(state); d != Join {
			t.Errorf("state %d: got %v, want join", state, d)
		}
	}
	// At the threshold and above, customers must balk.
	for _, state := range []int{3, 4, 50} {
		if d := p.Decide(state); d != Balk {
			t.Errorf("state %d: got %v, want balk", state, d)
		}
	}
}

func TestPolicyOptimal_ZeroThresholdAlwaysBalks(t *testing.T) {
	p := Policy{Kind: PolicyOptimal, Threshold: 0}
	if d := p.Decide(0); d != Balk {
		t.Errorf("empty system with zero threshold: got %v, want balk", d)
	}
}
