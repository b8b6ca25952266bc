package sim

// Sample is one observation of queue and system occupancy at an instant.
// The per-kind fields are only populated for mixed populations; the totals
// are always present. Samples are append-only during a run and read-only
// afterward.
type Sample struct {
	Time        float64
	QueueLength int
	SystemState int

	SelfishQueueLength int
	OptimalQueueLength int
	SelfishSystemState int
	OptimalSystemState int
}

// TimeSeries is the ordered collection of occupancy samples for one run.
type TimeSeries struct {
	Mixed   bool
	Samples []Sample
}

// NewTimeSeries creates an empty series. Mixed selects per-kind splitting.
func NewTimeSeries(mixed bool) *TimeSeries {
	return &TimeSeries{Mixed: mixed}
}

// Observe appends one sample of the current queue and server occupancy.
func (ts *TimeSeries) Observe(t float64, q *Queue, srv *Server) {
	s := Sample{
		Time:        t,
		QueueLength: q.Len(),
		SystemState: q.Len() + srv.Occupancy(),
	}
	if ts.Mixed {
		s.SelfishQueueLength = q.CountKind(PolicySelfish)
		s.OptimalQueueLength = q.CountKind(PolicyOptimal)
		s.SelfishSystemState = s.SelfishQueueLength
		s.OptimalSystemState = s.OptimalQueueLength
		if c := srv.Current(); c != nil {
			if c.Policy.Kind == PolicySelfish {
				s.SelfishSystemState++
			} else {
				s.OptimalSystemState++
			}
		}
	}
	ts.Samples = append(ts.Samples, s)
}

// After returns the samples taken at or after the warmup cutoff.
func (ts *TimeSeries) After(warmup float64) []Sample {
	for i, s := range ts.Samples {
		if s.Time >= warmup {
			return ts.Samples[i:]
		}
	}
	return nil
}

// Len returns the number of samples collected.
func (ts *TimeSeries) Len() int {
	return len(ts.Samples)
}
