package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerResource_SingleServerMutualExclusion(t *testing.T) {
	r := NewServerResource(1)
	a, b, c := &Customer{}, &Customer{}, &Customer{}

	require.True(t, r.Acquire(a))
	assert.Equal(t, 1, r.InUse())

	// Two more requesters block while the server is held.
	assert.False(t, r.Acquire(b))
	assert.False(t, r.Acquire(c))
	assert.Equal(t, 1, r.InUse())
	assert.Equal(t, 2, r.QueueLen())
}

func TestServerResource_GrantsInRequestOrder(t *testing.T) {
	// FIFO property: grants happen in request order, not just one at a time.
	r := NewServerResource(1)
	a, b, c := &Customer{}, &Customer{}, &Customer{}

	require.True(t, r.Acquire(a))
	require.False(t, r.Acquire(b))
	require.False(t, r.Acquire(c))

	next := r.Release()
	assert.Same(t, b, next)
	assert.Equal(t, 1, r.InUse()) // handover keeps the server held

	next = r.Release()
	assert.Same(t, c, next)
	assert.Equal(t, 1, r.InUse())

	assert.Nil(t, r.Release())
	assert.Equal(t, 0, r.InUse())
}

func TestServerResource_ImmediateGrantBelowCapacity(t *testing.T) {
	r := NewServerResource(2)

	assert.True(t, r.Acquire(&Customer{}))
	assert.True(t, r.Acquire(&Customer{}))
	assert.True(t, r.Busy())

	// A requester that finds a free server never joins the wait list.
	assert.Equal(t, 0, r.QueueLen())

	assert.False(t, r.Acquire(&Customer{}))
	assert.Equal(t, 1, r.QueueLen())
}

func TestServerResource_ReleaseWithoutAcquirePanics(t *testing.T) {
	r := NewServerResource(1)
	assert.Panics(t, func() { r.Release() })
}
