package sim

// ServerResource is a bank of c identical servers with a FIFO wait list.
// Invariant: 0 <= inUse <= capacity, and the head waiter is granted a
// server the instant one frees up. There is no priority and no preemption
// of a customer already in service.
type ServerResource struct {
	capacity int
	inUse    int
	waiters  []*Customer
}

// NewServerResource creates a resource with the given server count.
func NewServerResource(capacity int) *ServerResource {
	return &ServerResource{capacity: capacity}
}

// Capacity returns the number of servers.
func (r *ServerResource) Capacity() int {
	return r.capacity
}

// InUse returns the number of servers currently held.
func (r *ServerResource) InUse() int {
	return r.inUse
}

// Busy reports whether every server is occupied.
func (r *ServerResource) Busy() bool {
	return r.inUse >= r.capacity
}

// QueueLen returns the number of customers waiting for a grant.
func (r *ServerResource) QueueLen() int {
	return len(r.waiters)
}

// Acquire grants a server immediately when one is free and returns true.
// Otherwise the customer joins the tail of the wait list and false is
// returned; it will be handed the next freed server in arrival order.
func (r *ServerResource) Acquire(c *Customer) bool {
	if r.inUse < r.capacity {
		r.inUse++
		return true
	}
	r.waiters = append(r.waiters, c)
	return false
}

// Release frees one server and readmits the longest-waiting customer, if
// any. The returned customer already holds the freed server, so inUse is
// decremented exactly once per Acquire even when the grant is handed over
// in the same call.
func (r *ServerResource) Release() *Customer {
	if r.inUse <= 0 {
		panic("sim: Release without matching Acquire")
	}
	r.inUse--
	if len(r.waiters) == 0 {
		return nil
	}
	next := r.waiters[0]
	r.waiters = r.waiters[1:]
	r.inUse++
	return next
}
