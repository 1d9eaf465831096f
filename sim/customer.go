package sim

// Customer is one simulated entity flowing through the system: it
// arrives, contends for a server, is served, and departs. Its timestamps
// are each set exactly once by the lifecycle events; only the derived
// wait and sojourn scalars survive past departure.
type Customer struct {
	ArrivalTime   float64
	ServiceStart  float64 // set when a server is granted
	DepartureTime float64
	ServiceTime   float64 // drawn service duration
}

// Wait returns the time spent in the queue before service began.
func (c *Customer) Wait() float64 {
	return c.ServiceStart - c.ArrivalTime
}

// Sojourn returns the total time spent in the system.
func (c *Customer) Sojourn() float64 {
	return c.DepartureTime - c.ArrivalTime
}
