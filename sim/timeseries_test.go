package sim

import "testing"

func TestTimeSeries_Observe_Totals(t *testing.T) {
	ts := NewTimeSeries(false)
	q := &Queue{}
	srv := &Server{}

	ts.Observe(0, q, srv)

	q.Enqueue(&Customer{ID: 1})
	srv.Start(&Customer{ID: 0, ServiceTime: 1, ServiceStartSet: true})
	ts.Observe(1, q, srv)

	if ts.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ts.Len())
	}
	if s := ts.Samples[0]; s.QueueLength != 0 || s.SystemState != 0 {
		t.Errorf("empty-system sample = %+v", s)
	}
	if s := ts.Samples[1]; s.QueueLength != 1 || s.SystemState != 2 {
		t.Errorf("occupied sample = %+v, want queue 1, system 2", s)
	}
}

func TestTimeSeries_Observe_MixedSplit(t *testing.T) {
	ts := NewTimeSeries(true)
	q := &Queue{}
	srv := &Server{}

	q.Enqueue(&Customer{ID: 1, Policy: Policy{Kind: PolicySelfish}})
	q.Enqueue(&Customer{ID: 2, Policy: Policy{Kind: PolicyOptimal}})
	srv.Start(&Customer{
		ID: 0, ServiceTime: 1, ServiceStartSet: true,
		Policy: Policy{Kind: PolicyOptimal},
	})
	ts.Observe(3, q, srv)

	s := ts.Samples[0]
	if s.SelfishQueueLength != 1 || s.OptimalQueueLength != 1 {
		t.Errorf("queue split = %d/%d, want 1/1", s.SelfishQueueLength, s.OptimalQueueLength)
	}
	if s.SelfishSystemState != 1 || s.OptimalSystemState != 2 {
		t.Errorf("system split = %d/%d, want 1/2 (server holds an optimal customer)",
			s.SelfishSystemState, s.OptimalSystemState)
	}
	if s.SelfishSystemState+s.OptimalSystemState != s.SystemState {
		t.Errorf("split states sum to %d, total is %d",
			s.SelfishSystemState+s.OptimalSystemState, s.SystemState)
	}
}

func TestTimeSeries_After_CutsAtWarmup(t *testing.T) {
	ts := NewTimeSeries(false)
	ts.Samples = []Sample{{Time: 1}, {Time: 5}, {Time: 9}}

	if got := ts.After(0); len(got) != 3 {
		t.Errorf("After(0) returned %d samples, want 3", len(got))
	}
	if got := ts.After(5); len(got) != 2 || got[0].Time != 5 {
		t.Errorf("After(5) = %v, want samples at 5 and 9", got)
	}
	if got := ts.After(100); got != nil {
		t.Errorf("After(100) = %v, want nil", got)
	}
}
