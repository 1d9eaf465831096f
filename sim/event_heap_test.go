package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHeap_OrdersByTimestamp(t *testing.T) {
	s := NewSimulator(RunConfig{Lambda: 1, Mu: 1, Servers: 1, Horizon: 100, Seed: 1})

	e3 := s.NewArrivalEvent(3.0)
	e1 := s.NewArrivalEvent(1.0)
	e2 := s.NewArrivalEvent(2.0)

	h := NewEventHeap()
	h.Schedule(e3)
	h.Schedule(e1)
	h.Schedule(e2)

	assert.Equal(t, 1.0, h.PopNext().Timestamp())
	assert.Equal(t, 2.0, h.PopNext().Timestamp())
	assert.Equal(t, 3.0, h.PopNext().Timestamp())
}

func TestEventHeap_TiesBreakInCreationOrder(t *testing.T) {
	// Events at the same instant dispatch in the order they were created,
	// regardless of insertion order. This is the FIFO guarantee behind
	// deterministic replay.
	s := NewSimulator(RunConfig{Lambda: 1, Mu: 1, Servers: 1, Horizon: 100, Seed: 1})

	first := s.NewArrivalEvent(5.0)
	second := s.NewArrivalEvent(5.0)
	third := s.NewArrivalEvent(5.0)

	h := NewEventHeap()
	h.Schedule(third)
	h.Schedule(first)
	h.Schedule(second)

	assert.Equal(t, first.SeqID(), h.PopNext().SeqID())
	assert.Equal(t, second.SeqID(), h.PopNext().SeqID())
	assert.Equal(t, third.SeqID(), h.PopNext().SeqID())
}

func TestEventHeap_EmptyBehavior(t *testing.T) {
	h := NewEventHeap()
	require.Equal(t, 0, h.Len())
	assert.Nil(t, h.Peek())
	assert.Nil(t, h.PopNext())
}

func TestEventHeap_PeekDoesNotRemove(t *testing.T) {
	s := NewSimulator(RunConfig{Lambda: 1, Mu: 1, Servers: 1, Horizon: 100, Seed: 1})
	h := NewEventHeap()
	h.Schedule(s.NewArrivalEvent(1.0))

	require.NotNil(t, h.Peek())
	assert.Equal(t, 1, h.Len())
}
