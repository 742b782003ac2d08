package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maturation = int64(1200)

func TestFirstThreeConsumption_SkipsImmatureHeadInFavorOfDynamic(t *testing.T) {
	cs := newDefaultConveyors(22)
	require.NoError(t, cs[0].Enqueue(&Pallet{ID: 1, Source: SourceA, TProd: 900})) // immature at now=1500
	require.NoError(t, cs[3].Enqueue(&Pallet{ID: 2, Source: SourceA, TProd: 0}))   // dynamic row, mature

	s := &FirstThreeConsumption{maturation: maturation}
	idx, ok := s.Select(SourceA, 1500, cs)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestFirstThreeConsumption_NoneWhenNothingReady(t *testing.T) {
	cs := newDefaultConveyors(22)
	require.NoError(t, cs[0].Enqueue(&Pallet{ID: 1, Source: SourceA, TProd: 900}))
	s := &FirstThreeConsumption{maturation: maturation}
	_, ok := s.Select(SourceA, 1000, cs)
	assert.False(t, ok)
}

func TestLongestHeadConsumption_PicksDeepestBacklog(t *testing.T) {
	cs := newDefaultConveyors(22)
	// Row 0: two mature A pallets. Row 1: one mature A pallet.
	require.NoError(t, cs[0].Enqueue(&Pallet{ID: 1, Source: SourceA, TProd: 0}))
	require.NoError(t, cs[0].Enqueue(&Pallet{ID: 2, Source: SourceA, TProd: 0}))
	require.NoError(t, cs[1].Enqueue(&Pallet{ID: 3, Source: SourceA, TProd: 0}))

	s := &LongestHeadConsumption{maturation: maturation}
	idx, ok := s.Select(SourceA, 2000, cs)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLongestHeadConsumption_IgnoresWrongSourceOrImmatureHeads(t *testing.T) {
	cs := newDefaultConveyors(22)
	require.NoError(t, cs[0].Enqueue(&Pallet{ID: 1, Source: SourceB, TProd: 0}))
	require.NoError(t, cs[0].Enqueue(&Pallet{ID: 2, Source: SourceB, TProd: 0}))
	require.NoError(t, cs[4].Enqueue(&Pallet{ID: 3, Source: SourceB, TProd: 1999})) // dedicated B, immature at 2000
	require.NoError(t, cs[3].Enqueue(&Pallet{ID: 4, Source: SourceA, TProd: 0}))    // wrong source

	s := &LongestHeadConsumption{maturation: maturation}
	_, ok := s.Select(SourceB, 2000, cs)
	assert.False(t, ok, "row 0 is dedicated to A so it can't serve B, row 4's head is immature, row 3's head is the wrong source")
}
