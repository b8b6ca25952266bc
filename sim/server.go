package sim

import "fmt"

// Server holds zero or one in-service customer plus that customer's
// scheduled completion time. A non-empty server always has a defined next
// completion equal to the held customer's CompletionTime.
type Server struct {
	current        *Customer
	nextCompletion float64
}

// Free reports whether the server is empty.
func (s *Server) Free() bool {
	return s.current == nil
}

// Occupancy returns 0 or 1.
func (s *Server) Occupancy() int {
	if s.current == nil {
		return 0
	}
	return 1
}

// Current returns the in-service customer, or nil.
func (s *Server) Current() *Customer {
	return s.current
}

// NextCompletion returns the scheduled completion time of the in-service
// customer. Only meaningful while the server is occupied.
func (s *Server) NextCompletion() float64 {
	return s.nextCompletion
}

// Start installs a customer whose service start has already been stamped.
// The single-slot invariant is enforced: installing into an occupied server
// is a programming error.
func (s *Server) Start(c *Customer) {
	if s.current != nil {
		panic(fmt.Sprintf("Server.Start: server already holds customer %d", s.current.ID))
	}
	if !c.ServiceStartSet {
		panic(fmt.Sprintf("Server.Start: customer %d has no service start time", c.ID))
	}
	s.current = c
	s.nextCompletion = c.CompletionTime()
}

// Finish removes and returns the in-service customer.
func (s *Server) Finish() *Customer {
	c := s.current
	s.current = nil
	s.nextCompletion = 0
	return c
}
