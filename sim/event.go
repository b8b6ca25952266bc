package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events. Each event has a
// timestamp and an Execute method that advances simulation state when
// invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)

	// class orders same-instant events: completions free the server
	// before an arriving customer's join decision is evaluated.
	class() int
}

const (
	classCompletion = 0
	classArrival    = 1
)

// ArrivalEvent represents a pending customer reaching its arrival instant.
type ArrivalEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

func (e *ArrivalEvent) class() int { return classArrival }

// Execute consults the customer's policy against the system state observed
// strictly before the customer is inserted, then joins or balks. In either
// case the next customer is generated, so the look-ahead buffer always holds
// exactly one pending arrival.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	c := e.Customer
	state := sim.SystemState()
	c.ObservedState = state

	if c.Policy.Decide(state) == Balk {
		logrus.Infof("<< Arrival: customer %d balked at t=%.4f (state=%d)", c.ID, e.time, state)
		c.State = StateBalked
		sim.Balked = append(sim.Balked, c)
	} else {
		logrus.Infof("<< Arrival: customer %d joined at t=%.4f (state=%d)", c.ID, e.time, state)
		if sim.Server.Free() {
			sim.startService(c, e.time)
		} else {
			c.State = StateWaiting
			sim.Queue.Enqueue(c)
		}
	}

	sim.generateArrival(e.time)
}

// CompletionEvent represents the server reaching the in-service customer's
// scheduled completion time.
type CompletionEvent struct {
	time     float64
	Customer *Customer
}

// Timestamp returns the scheduled time of the CompletionEvent.
func (e *CompletionEvent) Timestamp() float64 {
	return e.time
}

func (e *CompletionEvent) class() int { return classCompletion }

// Execute removes the customer from the server, records it as completed, and
// immediately starts service for the queue head if one is waiting.
func (e *CompletionEvent) Execute(sim *Simulator) {
	c := sim.Server.Finish()
	logrus.Infof("<< Completion: customer %d at t=%.4f", c.ID, e.time)
	c.State = StateCompleted
	sim.Completed = append(sim.Completed, c)

	if next := sim.Queue.Dequeue(); next != nil {
		sim.startService(next, e.time)
	}
}
