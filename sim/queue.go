// Implements the FIFO queue holding customers that joined but have not yet
// started service.

package sim

import (
	"fmt"
	"strings"
)

// Queue is a FIFO queue of non-balked, not-yet-served customers. The head is
// always the waiting customer with the earliest arrival time. Every member
// has an unset service start.
type Queue struct {
	customers []*Customer
}

// Enqueue adds a customer to the back of the queue.
func (q *Queue) Enqueue(c *Customer) {
	q.customers = append(q.customers, c)
}

// Dequeue removes and returns the customer at the front of the queue.
// Returns nil if the queue is empty.
func (q *Queue) Dequeue() *Customer {
	if len(q.customers) == 0 {
		return nil
	}
	head := q.customers[0]
	q.customers = q.customers[1:]
	return head
}

// Peek returns the customer at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *Queue) Peek() *Customer {
	if len(q.customers) == 0 {
		return nil
	}
	return q.customers[0]
}

// Len returns the number of waiting customers.
func (q *Queue) Len() int {
	return len(q.customers)
}

// Items returns the queue contents for iteration. The returned slice is the
// queue's internal storage -- callers may iterate over it but MUST NOT
// append to or reslice it.
func (q *Queue) Items() []*Customer {
	return q.customers
}

// CountKind returns how many waiting customers carry the given policy kind.
func (q *Queue) CountKind(kind PolicyKind) int {
	n := 0
	for _, c := range q.customers {
		if c.Policy.Kind == kind {
			n++
		}
	}
	return n
}

func (q *Queue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range q.customers {
		sb.WriteString(fmt.Sprint(c.ID))
		if i < len(q.customers)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
