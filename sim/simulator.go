// sim/simulator.go
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulated time, the system
// state of one M/M/c run, and the event loop. All mutable run state is
// scoped here, never process-wide, so concurrent replications cannot
// interfere.
type Simulator struct {
	Clock   float64
	Horizon float64

	// EventQueue holds pending arrival and departure events.
	EventQueue *EventHeap

	Resource *ServerResource
	Tracker  *AreaTracker

	// Interarrival and Service draw the exponential gaps of the Markovian
	// queue. Tests substitute ConstantSampler to script scenarios.
	Interarrival Sampler
	Service      Sampler

	arrivalRNG *rand.Rand
	serviceRNG *rand.Rand

	// Raw run records reduced into RunMetrics after the loop stops.
	Waits    []float64 // one wait per customer departed within the horizon
	Sojourns []float64 // one sojourn per customer departed within the horizon
	BusyTime float64   // summed busy intervals across all servers, clipped to [0, Horizon]

	nextSeqID uint64
}

// NewSimulator constructs a fresh simulator for one run. The arrival and
// service streams are derived from the run seed but mutually independent.
func NewSimulator(cfg RunConfig) *Simulator {
	rng := NewPartitionedRNG(cfg.Seed)
	return &Simulator{
		Horizon:      cfg.Horizon,
		EventQueue:   NewEventHeap(),
		Resource:     NewServerResource(cfg.Servers),
		Tracker:      &AreaTracker{},
		Interarrival: ExponentialSampler{Rate: cfg.Lambda},
		Service:      ExponentialSampler{Rate: cfg.Mu},
		arrivalRNG:   rng.ForSubsystem(SubsystemArrival),
		serviceRNG:   rng.ForSubsystem(SubsystemService),
	}
}

// newSeqID generates the next sequence number, the deterministic FIFO
// tie-breaker for events at equal timestamps.
func (sim *Simulator) newSeqID() uint64 {
	sim.nextSeqID++
	return sim.nextSeqID
}

// NewArrivalEvent creates an arrival event at the given time.
func (sim *Simulator) NewArrivalEvent(t float64) *ArrivalEvent {
	return &ArrivalEvent{time: t, seq: sim.newSeqID()}
}

// NewDepartureEvent creates a departure event for the given customer.
func (sim *Simulator) NewDepartureEvent(t float64, cust *Customer) *DepartureEvent {
	return &DepartureEvent{time: t, seq: sim.newSeqID(), Customer: cust}
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Start schedules the first arrival. The stream then perpetuates itself
// until the horizon cuts it off.
func (sim *Simulator) Start() {
	gap := sim.Interarrival.Sample(sim.arrivalRNG)
	sim.Schedule(sim.NewArrivalEvent(gap))
}

// Run dispatches events in (timestamp, sequence) order until the next
// event would land strictly past the horizon. Pending events beyond the
// horizon are abandoned unexecuted, then the occupancy integrals are
// closed out at the horizon for whatever state is still held there.
func (sim *Simulator) Run() {
	for sim.EventQueue.Len() > 0 {
		ev := sim.EventQueue.PopNext()
		if ev.Timestamp() > sim.Horizon {
			break
		}
		if ev.Timestamp() < sim.Clock {
			panic(fmt.Sprintf("sim: clock went backwards: %f < %f", ev.Timestamp(), sim.Clock))
		}
		sim.Clock = ev.Timestamp()
		ev.Execute(sim)
	}
	sim.Tracker.Finalize(sim.Horizon)
	logrus.Infof("[t %012.4f] simulation ended, %d departures recorded", sim.Clock, len(sim.Waits))
}

// beginService admits a customer to a server it already holds: the grant
// happened either immediately at arrival or inside Release. Records the
// service start, removes the customer from the queue count when it
// actually waited, accounts its busy time, and schedules its departure.
func (sim *Simulator) beginService(cust *Customer, now float64) {
	cust.ServiceStart = now
	if cust.ServiceStart > cust.ArrivalTime {
		// It waited: leaves the queue but remains in the system.
		sim.Tracker.Update(now)
		sim.Tracker.Nq--
	}

	cust.ServiceTime = sim.Service.Sample(sim.serviceRNG)

	// Busy-time contribution clipped to [0, Horizon]; service may straddle
	// the horizon.
	busyEnd := math.Min(sim.Horizon, now+cust.ServiceTime)
	if busyEnd > now {
		sim.BusyTime += busyEnd - now
	}

	sim.Schedule(sim.NewDepartureEvent(now+cust.ServiceTime, cust))
}

// Simulate executes one run to the horizon and reduces the raw event
// records into a RunMetrics record.
func Simulate(cfg RunConfig) (RunMetrics, error) {
	if err := cfg.Validate(); err != nil {
		return RunMetrics{}, err
	}
	if !cfg.Stable() {
		logrus.Warnf("lambda=%.6g >= %d*mu=%.6g: queue never empties, statistics are degenerate",
			cfg.Lambda, cfg.Servers, float64(cfg.Servers)*cfg.Mu)
	}

	sim := NewSimulator(cfg)
	sim.Start()
	sim.Run()

	m := sim.ComputeMetrics(cfg)
	if m.Departures == 0 {
		logrus.Warnf("seed %d: no customer departed within the horizon, Wq/W are NaN", cfg.Seed)
	}
	return m, nil
}
