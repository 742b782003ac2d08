package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConveyor_EnqueueRespectsCapacity(t *testing.T) {
	c := NewConveyor(0, RoleDedicatedA, 2)
	require.True(t, c.CanEnqueue())
	require.NoError(t, c.Enqueue(&Pallet{ID: 1, Source: SourceA}))
	require.NoError(t, c.Enqueue(&Pallet{ID: 2, Source: SourceA}))
	assert.False(t, c.CanEnqueue())
	assert.ErrorIs(t, c.Enqueue(&Pallet{ID: 3, Source: SourceA}), ErrFull)
	assert.Equal(t, 2, c.Len())
}

func TestConveyor_FIFOOrder(t *testing.T) {
	c := NewConveyor(0, RoleDedicatedA, 5)
	first := &Pallet{ID: 1, Source: SourceA, TProd: 0}
	second := &Pallet{ID: 2, Source: SourceA, TProd: 24}
	require.NoError(t, c.Enqueue(first))
	require.NoError(t, c.Enqueue(second))

	assert.Same(t, first, c.PeekHead())

	alwaysTrue := func(*Pallet, int64) bool { return true }
	popped := c.PopHeadIf(0, alwaysTrue)
	assert.Same(t, first, popped)
	assert.Same(t, second, c.PeekHead())
	assert.Equal(t, 1, c.Len())
}

func TestConveyor_PopHeadIf_NeverSkipsHead(t *testing.T) {
	c := NewConveyor(0, RoleDedicatedA, 5)
	immatureHead := &Pallet{ID: 1, Source: SourceA, TProd: 100}
	matureBehind := &Pallet{ID: 2, Source: SourceA, TProd: 0}
	require.NoError(t, c.Enqueue(immatureHead))
	require.NoError(t, c.Enqueue(matureBehind))

	mature := func(p *Pallet, now int64) bool { return now-p.TProd >= 1200 }
	popped := c.PopHeadIf(200, mature)
	assert.Nil(t, popped, "must not skip an immature head to reach a mature pallet behind it")
	assert.Equal(t, 2, c.Len())
}

func TestConveyor_ContainsLot(t *testing.T) {
	c := NewConveyor(0, RoleDedicatedA, 5)
	require.NoError(t, c.Enqueue(&Pallet{ID: 1, Source: SourceA, Lot: 3}))
	assert.True(t, c.ContainsLot(SourceA, 3))
	assert.False(t, c.ContainsLot(SourceA, 4))
	assert.False(t, c.ContainsLot(SourceB, 3))
}

func TestRole_Accepts(t *testing.T) {
	assert.True(t, RoleDedicatedA.Accepts(SourceA))
	assert.False(t, RoleDedicatedA.Accepts(SourceB))
	assert.True(t, RoleDynamic.Accepts(SourceA))
	assert.True(t, RoleDynamic.Accepts(SourceB))
	assert.True(t, RoleDynamic.Accepts(SourceC))
}
