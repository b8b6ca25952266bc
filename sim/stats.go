// Post-run reduction of the record sets and time series into summary
// statistics. Aggregation never fails: means over zero observations come
// back as undefined Stats, since short or empty runs are legitimate input.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stat is a mean (or ratio) that may be undefined when there were no
// observations. The explicit validity flag keeps "no data" distinct from a
// legitimate numeric zero.
type Stat struct {
	Value float64
	Valid bool
}

func definedStat(v float64) Stat {
	return Stat{Value: v, Valid: true}
}

// meanStat reduces a sample to its mean, or to the undefined Stat when the
// sample is empty (gonum returns NaN there, which must not leak out).
func meanStat(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}
	return definedStat(stat.Mean(xs, nil))
}

func (s Stat) String() string {
	if !s.Valid {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// KindSummary holds the per-policy-kind statistics of a mixed run.
type KindSummary struct {
	Completed int
	Balks     int

	MeanQueueLength  Stat
	MeanSystemState  Stat
	MeanWaitingTime  Stat
	MeanTimeInSystem Stat
	BalkProbability  Stat
	MeanCost         Stat
}

// Summary is the aggregated outcome of one run. The Selfish and Optimal
// fields are nil except for mixed populations.
type Summary struct {
	Population Population
	Completed  int
	Balks      int

	MeanQueueLength  Stat
	MeanSystemState  Stat
	MeanWaitingTime  Stat
	MeanServiceTime  Stat
	MeanTimeInSystem Stat
	Utilization      Stat

	// MeanCost is the all-customers mean cost in time units; mixed runs
	// only.
	MeanCost Stat

	Selfish *KindSummary
	Optimal *KindSummary
}

// Aggregate reduces the completed and balked record sets and the time series
// into a Summary. Observations with sample time (for the series) or arrival
// time (for customers) before the warmup cutoff are excluded. elapsed is the
// total observed time, used for utilization.
func Aggregate(completed, balked []*Customer, series *TimeSeries, cfg Config, elapsed float64) *Summary {
	warmup := cfg.Warmup
	s := &Summary{Population: cfg.Population()}

	var queueLengths, systemStates []float64
	for _, sample := range series.After(warmup) {
		queueLengths = append(queueLengths, float64(sample.QueueLength))
		systemStates = append(systemStates, float64(sample.SystemState))
	}
	s.MeanQueueLength = meanStat(queueLengths)
	s.MeanSystemState = meanStat(systemStates)

	var waits, services []float64
	serviceSum := 0.0
	for _, c := range completed {
		if c.ArrivalTime < warmup {
			continue
		}
		waits = append(waits, c.Wait())
		services = append(services, c.ServiceTime)
		serviceSum += c.ServiceTime
	}
	s.Completed = len(waits)
	s.MeanWaitingTime = meanStat(waits)
	s.MeanServiceTime = meanStat(services)
	if s.MeanWaitingTime.Valid && s.MeanServiceTime.Valid {
		s.MeanTimeInSystem = definedStat(s.MeanServiceTime.Value + s.MeanWaitingTime.Value)
	}
	if observed := elapsed - warmup; observed > 0 && len(services) > 0 {
		s.Utilization = definedStat(serviceSum / observed)
	}

	for _, c := range balked {
		if c.ArrivalTime >= warmup {
			s.Balks++
		}
	}

	if cfg.Population() == PopulationMixed {
		s.Selfish = kindSummary(PolicySelfish, completed, balked, series, cfg)
		s.Optimal = kindSummary(PolicyOptimal, completed, balked, series, cfg)
		s.MeanCost = meanCost(
			s.Selfish.Balks+s.Optimal.Balks,
			s.Completed,
			cfg.Balking.Cost,
			totalTime(completed, warmup),
		)
	}

	return s
}

// kindSummary computes the statistics of one policy kind within a mixed run.
func kindSummary(kind PolicyKind, completed, balked []*Customer, series *TimeSeries, cfg Config) *KindSummary {
	warmup := cfg.Warmup
	ks := &KindSummary{}

	var queueLengths, systemStates []float64
	for _, sample := range series.After(warmup) {
		if kind == PolicySelfish {
			queueLengths = append(queueLengths, float64(sample.SelfishQueueLength))
			systemStates = append(systemStates, float64(sample.SelfishSystemState))
		} else {
			queueLengths = append(queueLengths, float64(sample.OptimalQueueLength))
			systemStates = append(systemStates, float64(sample.OptimalSystemState))
		}
	}
	ks.MeanQueueLength = meanStat(queueLengths)
	ks.MeanSystemState = meanStat(systemStates)

	var waits, services []float64
	timeSum := 0.0
	for _, c := range completed {
		if c.ArrivalTime < warmup || c.Policy.Kind != kind {
			continue
		}
		waits = append(waits, c.Wait())
		services = append(services, c.ServiceTime)
		timeSum += c.Wait() + c.ServiceTime
	}
	ks.Completed = len(waits)
	ks.MeanWaitingTime = meanStat(waits)
	if meanService := meanStat(services); meanService.Valid && ks.MeanWaitingTime.Valid {
		ks.MeanTimeInSystem = definedStat(meanService.Value + ks.MeanWaitingTime.Value)
	}

	for _, c := range balked {
		if c.ArrivalTime >= warmup && c.Policy.Kind == kind {
			ks.Balks++
		}
	}

	if n := ks.Balks + ks.Completed; n > 0 {
		ks.BalkProbability = definedStat(float64(ks.Balks) / float64(n))
	}
	ks.MeanCost = meanCost(ks.Balks, ks.Completed, cfg.Balking.Cost, timeSum)

	return ks
}

// meanCost computes (balks*cost + total time in system) / (balks + completed),
// the per-customer cost in time units. Undefined when no customer reached a
// terminal state.
func meanCost(balks, completed int, cost, timeInSystemSum float64) Stat {
	n := balks + completed
	if n == 0 {
		return Stat{}
	}
	return definedStat((float64(balks)*cost + timeInSystemSum) / float64(n))
}

// totalTime sums wait + service over completed customers past the warmup.
func totalTime(completed []*Customer, warmup float64) float64 {
	sum := 0.0
	for _, c := range completed {
		if c.ArrivalTime >= warmup {
			sum += c.Wait() + c.ServiceTime
		}
	}
	return sum
}
