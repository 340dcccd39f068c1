// Implements the ServerPool, the finite-capacity shared resource customers
// acquire for service. Customers that find every server busy wait in FIFO order.

package sim

import (
	"fmt"
	"strings"
)

// ServerPool models a fixed set of identical servers plus the FIFO queue of
// customers waiting for one. A server is granted only when inUse < capacity;
// a release hands the freed server to the longest-waiting customer.
//
// The pool is mutated only from the simulator's single event loop, so no
// locking is required.
type ServerPool struct {
	capacity int
	inUse    int
	waiting  []*Customer // FIFO queue of customers waiting for a server
}

// NewServerPool creates a pool with the given capacity.
// Capacity must be >= 1; Params.Validate enforces this before construction.
func NewServerPool(capacity int) *ServerPool {
	return &ServerPool{capacity: capacity}
}

// Acquire attempts to grant a server to c. Returns true if a server was free
// (inUse incremented); otherwise enqueues c at the back of the waiting queue
// and returns false.
func (p *ServerPool) Acquire(c *Customer) bool {
	if p.inUse < p.capacity {
		p.inUse++
		return true
	}
	p.waiting = append(p.waiting, c)
	return false
}

// Release returns a server to the pool. If customers are waiting, the head of
// the queue is granted the freed server immediately (inUse stays constant)
// and returned so the caller can resume it at the current instant.
// Returns nil when nobody was waiting.
func (p *ServerPool) Release() *Customer {
	if p.inUse <= 0 {
		panic("Release: no server in use")
	}
	p.inUse--
	if len(p.waiting) == 0 {
		return nil
	}
	next := p.waiting[0]
	p.waiting = p.waiting[1:]
	p.inUse++
	return next
}

// InUse returns the number of servers currently held.
func (p *ServerPool) InUse() int {
	return p.inUse
}

// Capacity returns the total number of servers in the pool.
func (p *ServerPool) Capacity() int {
	return p.capacity
}

// QueueLen returns the number of customers waiting for a server.
func (p *ServerPool) QueueLen() int {
	return len(p.waiting)
}

func (p *ServerPool) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ServerPool(%d/%d in use, waiting: [", p.inUse, p.capacity))
	for i, c := range p.waiting {
		sb.WriteString(fmt.Sprint(c.ID))
		if i < len(p.waiting)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("])")
	return sb.String()
}
