package sim

// AreaTracker accumulates the time integrals of the system and queue
// occupancy, from which the time-average L and Lq are derived. Callers
// must Update(now) immediately before mutating N or Nq: integrate first,
// then mutate, or the piecewise-constant integral is corrupted.
//
// Invariant: N >= Nq >= 0 at all times, and AreaN/AreaNq equal the exact
// integral of N/Nq from 0 to the last update time.
type AreaTracker struct {
	N      int // customers in system
	Nq     int // customers waiting (excludes those in service)
	lastT  float64
	AreaN  float64
	AreaNq float64
}

// Update advances the integrals to time t. Calls with t at or before the
// last update time are no-ops, so duplicate or out-of-order calls never
// integrate a negative duration.
func (a *AreaTracker) Update(t float64) {
	dt := t - a.lastT
	if dt <= 0 {
		return
	}
	a.AreaN += float64(a.N) * dt
	a.AreaNq += float64(a.Nq) * dt
	a.lastT = t
}

// Finalize closes out the integrals at the horizon, accounting for any
// state still held when the run loop stopped.
func (a *AreaTracker) Finalize(horizon float64) {
	a.Update(horizon)
}

// LastUpdate returns the time the integrals currently extend to.
func (a *AreaTracker) LastUpdate() float64 {
	return a.lastT
}
