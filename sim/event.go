package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event fires at a simulated Timestamp and advances simulation state
// when Executed. SeqID is assigned at creation time and breaks timestamp
// ties in submission order.
type Event interface {
	Timestamp() float64
	SeqID() uint64
	Execute(*Simulator)
}

// ArrivalEvent represents one customer entering the system. Arrivals are
// self-perpetuating: executing one draws the next inter-arrival gap and
// schedules its successor. The horizon cutoff in the run loop terminates
// the stream.
type ArrivalEvent struct {
	time float64
	seq  uint64
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// SeqID returns the event's creation sequence number.
func (e *ArrivalEvent) SeqID() uint64 {
	return e.seq
}

// Execute admits the arriving customer into the system: the occupancy
// integrals are advanced first, then N is incremented, and the customer is
// counted into Nq only when every server is occupied at this instant.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Infof("[t %012.4f] arrival", e.time)

	sim.Tracker.Update(e.time)
	sim.Tracker.N++
	if sim.Resource.Busy() {
		// All c servers occupied: this customer is provisionally a queue member.
		sim.Tracker.Nq++
	}

	cust := &Customer{ArrivalTime: e.time}
	if sim.Resource.Acquire(cust) {
		sim.beginService(cust, e.time)
	}

	gap := sim.Interarrival.Sample(sim.arrivalRNG)
	sim.Schedule(sim.NewArrivalEvent(e.time + gap))
}

// DepartureEvent represents a customer completing service and leaving the
// system.
type DepartureEvent struct {
	time     float64
	seq      uint64
	Customer *Customer
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() float64 {
	return e.time
}

// SeqID returns the event's creation sequence number.
func (e *DepartureEvent) SeqID() uint64 {
	return e.seq
}

// Execute records the departed customer's samples, releases its server to
// the longest-waiting customer, and decrements N. Wait/sojourn samples are
// filtered on departure <= horizon, but the occupancy decrement always
// happens: the area integrals must reflect true occupancy up to whatever
// instant the run loop reaches.
func (e *DepartureEvent) Execute(sim *Simulator) {
	logrus.Infof("[t %012.4f] departure", e.time)

	cust := e.Customer
	cust.DepartureTime = e.time

	if e.time <= sim.Horizon {
		sim.Waits = append(sim.Waits, cust.Wait())
		sim.Sojourns = append(sim.Sojourns, cust.Sojourn())
	}

	if next := sim.Resource.Release(); next != nil {
		sim.beginService(next, e.time)
	}

	sim.Tracker.Update(e.time)
	sim.Tracker.N--
}
