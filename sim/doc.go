// Package sim implements a discrete-event simulator for M/M/c queueing
// systems. One run draws exponential inter-arrival and service times from
// seeded streams, pushes customers through a FIFO bank of c servers, and
// reduces the event history into steady-state estimates of utilization,
// queue length, and waiting time. Replicated runs with distinct seeds are
// aggregated into mean and confidence-interval summaries, and the
// single-server case can be cross-checked against the closed-form M/M/1
// reference.
package sim
