// Defines the Customer struct that models an individual customer in the
// simulation. Tracks arrival time, service time, service start, and the
// policy decision context.

package sim

import "fmt"

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	// StatePending: generated, held outside the queue until the clock
	// reaches the arrival instant.
	StatePending CustomerState = "pending"
	// StateWaiting: joined the queue, service not yet started.
	StateWaiting CustomerState = "waiting"
	// StateInService: occupying the server.
	StateInService CustomerState = "in_service"
	// StateCompleted: service finished. Absorbing.
	StateCompleted CustomerState = "completed"
	// StateBalked: decided not to join. Absorbing; never enters queue or
	// server.
	StateBalked CustomerState = "balked"
)

// Customer models a single customer's passage through the system. A customer
// either balks at its arrival instant or transitions
// waiting → in service → completed exactly once. Entities are never reused
// after reaching an absorbing state.
type Customer struct {
	ID int // generation order, unique within a run

	ArrivalTime float64 // instant the customer reaches the system
	ServiceTime float64 // sampled once at generation, fixed for life

	// ServiceStart is only meaningful when ServiceStartSet is true.
	ServiceStart    float64
	ServiceStartSet bool

	// ObservedState is the system state (queue length + server occupancy)
	// the customer saw at its join/balk decision, before being inserted
	// itself.
	ObservedState int

	Policy Policy

	State CustomerState
}

// Balked reports whether the customer decided not to join.
func (c *Customer) Balked() bool {
	return c.State == StateBalked
}

// Wait is the time spent in the queue. Only valid once service has started.
func (c *Customer) Wait() float64 {
	return c.ServiceStart - c.ArrivalTime
}

// CompletionTime is the instant service ends. Only valid once service has
// started.
func (c *Customer) CompletionTime() float64 {
	return c.ServiceStart + c.ServiceTime
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %d, State: %s, Policy: %s, ArrivalTime: %.4f)",
		c.ID, c.State, c.Policy.Kind, c.ArrivalTime)
}
