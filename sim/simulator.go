// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// scheduledEvent pairs an event with its insertion sequence number. The
// sequence is the final ordering key so that pop order is fully
// deterministic.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements heap.Interface and orders events by timestamp, then
// by class (completions before same-instant arrivals), then by insertion
// order. See canonical Golang example here:
// https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []scheduledEvent

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	a, b := eq[i], eq[j]
	if a.ev.Timestamp() != b.ev.Timestamp() {
		return a.ev.Timestamp() < b.ev.Timestamp()
	}
	if a.ev.class() != b.ev.class() {
		return a.ev.class() < b.ev.class()
	}
	return a.seq < b.seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(scheduledEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state, and
// the event loop.
type Simulator struct {
	Clock   float64
	Horizon float64
	// EventQueue holds the pending arrival and the scheduled completion.
	EventQueue EventQueue
	Queue      *Queue
	Server     *Server

	// Completed and Balked are the absorbing record sets, in event order.
	Completed []*Customer
	Balked    []*Customer

	// Series collects one occupancy sample after every executed event.
	Series *TimeSeries

	Config Config

	// Threshold is Naor's threshold; only meaningful for mixed
	// populations, where it is shared read-only by every optimal
	// customer.
	Threshold int

	rng      *PartitionedRNG
	arrivals *ExpSampler
	services *ExpSampler

	nextID int
	seq    uint64
}

// NewSimulator validates the configuration, wires the random streams, and
// precomputes the Naor threshold when the population includes optimal
// customers. All taxonomy errors surface here, before Run.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	arrivals, err := NewExpSampler(cfg.ArrivalRate, rng.ForSubsystem(SubsystemArrivals))
	if err != nil {
		return nil, err
	}
	services, err := NewExpSampler(cfg.ServiceRate, rng.ForSubsystem(SubsystemServices))
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		Horizon:    cfg.Horizon,
		EventQueue: make(EventQueue, 0),
		Queue:      &Queue{},
		Server:     &Server{},
		Series:     NewTimeSeries(cfg.Population() == PopulationMixed),
		Config:     cfg,
		rng:        rng,
		arrivals:   arrivals,
		services:   services,
	}

	if cfg.Population() == PopulationMixed {
		threshold, err := NaorThreshold(cfg.ArrivalRate, cfg.ServiceRate, cfg.Balking.Cost)
		if err != nil {
			return nil, err
		}
		s.Threshold = threshold
	}

	return s, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, scheduledEvent{ev: ev, seq: sim.seq})
	sim.seq++
}

// SystemState returns the current queue length plus server occupancy.
func (sim *Simulator) SystemState() int {
	return sim.Queue.Len() + sim.Server.Occupancy()
}

// Run executes the event loop until the next event would pass the horizon.
// Customers still queued or in service at the horizon stay out of the
// completed set. One time-series sample is taken after every executed event,
// so a run with no events before the horizon has an empty series.
func (sim *Simulator) Run() {
	sim.generateArrival(sim.Clock)

	for len(sim.EventQueue) > 0 {
		next := sim.EventQueue[0].ev
		if next.Timestamp() > sim.Horizon {
			break
		}
		ev := heap.Pop(&sim.EventQueue).(scheduledEvent).ev
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Infof("[t=%012.4f] Executing %T", sim.Clock, ev)
		// process the event
		ev.Execute(sim)
		sim.Series.Observe(sim.Clock, sim.Queue, sim.Server)
	}
	logrus.Infof("[t=%012.4f] Simulation ended (%d completed, %d balked)",
		sim.Clock, len(sim.Completed), len(sim.Balked))
}

// Summarize aggregates the run's record sets and time series.
func (sim *Simulator) Summarize() *Summary {
	elapsed := sim.Clock
	if sim.Horizon < elapsed {
		elapsed = sim.Horizon
	}
	return Aggregate(sim.Completed, sim.Balked, sim.Series, sim.Config, elapsed)
}

// generateArrival creates the next customer with a sampled interarrival
// offset and service duration, and schedules its arrival. The customer is
// held outside the queue until the clock reaches its arrival instant, so its
// policy sees the true state at arrival time rather than at creation time.
func (sim *Simulator) generateArrival(now float64) {
	c := &Customer{
		ID:          sim.nextID,
		ArrivalTime: now + sim.arrivals.Sample(),
		ServiceTime: sim.services.Sample(),
		Policy:      sim.assignPolicy(),
		State:       StatePending,
	}
	sim.nextID++
	sim.Schedule(&ArrivalEvent{time: c.ArrivalTime, Customer: c})
}

// assignPolicy picks the policy for a newly generated customer according to
// the configured population.
func (sim *Simulator) assignPolicy() Policy {
	switch sim.Config.Population() {
	case PopulationSelfish:
		return Policy{
			Kind:          PolicySelfish,
			ServiceRate:   sim.Config.ServiceRate,
			CostOfBalking: sim.Config.Balking.Cost,
		}
	case PopulationMixed:
		if sim.rng.ForSubsystem(SubsystemPolicy).Float64() < *sim.Config.Balking.SelfishProbability {
			return Policy{
				Kind:          PolicySelfish,
				ServiceRate:   sim.Config.ServiceRate,
				CostOfBalking: sim.Config.Balking.Cost,
			}
		}
		return Policy{Kind: PolicyOptimal, Threshold: sim.Threshold}
	default:
		return Policy{Kind: PolicyBasic}
	}
}

// startService pops the customer out of waiting, stamps its service start,
// installs it into the server, and schedules the completion.
func (sim *Simulator) startService(c *Customer, now float64) {
	c.ServiceStart = now
	c.ServiceStartSet = true
	c.State = StateInService
	sim.Server.Start(c)
	sim.Schedule(&CompletionEvent{time: c.CompletionTime(), Customer: c})
}
