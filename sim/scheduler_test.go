package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowScheduler_TriggersOnceCountReachesLotSize(t *testing.T) {
	w := newWindowScheduler()
	const lotSize = int64(90)
	const maturationMinutes = int64(1200)
	const windowMinutes = int64(720)

	counter := func(source Source, cutoff int64) int64 {
		if source == SourceA {
			return 89
		}
		return 0
	}
	w.evaluate(2639, lotSize, maturationMinutes, windowMinutes, counter)
	assert.False(t, w.Active(), "89 < lot_size must not trigger")

	counter = func(source Source, cutoff int64) int64 {
		if source == SourceA {
			return 90
		}
		return 0
	}
	w.evaluate(2640, lotSize, maturationMinutes, windowMinutes, counter)
	assert.True(t, w.Active())
	assert.Equal(t, SourceA, w.ActiveSource())
	assert.Equal(t, int64(2640), w.WindowStart())
	assert.Equal(t, int64(3360), w.WindowEnd())
	assert.Equal(t, int64(2640), w.NextConsumeTime(), "first consumption attempt is immediate")
}

func TestWindowScheduler_ClosesAndReopensSameTick(t *testing.T) {
	// GIVEN a scheduler with A open and every source permanently eligible
	w := newWindowScheduler()
	const lotSize = int64(90)
	always90 := func(source Source, cutoff int64) int64 { return 90 }

	w.evaluate(0, lotSize, 1200, 720, always90)
	assert.True(t, w.Active())
	assert.Equal(t, SourceA, w.ActiveSource())

	// WHEN evaluating at t=720, A's window_end
	w.evaluate(720, lotSize, 1200, 720, always90)

	// THEN A closes and B, already eligible, opens on the very same tick
	assert.True(t, w.Active())
	assert.Equal(t, SourceB, w.ActiveSource())
	assert.Equal(t, int64(720), w.WindowStart())
}

func TestWindowScheduler_RotationDoesNotAdvanceOnFailedTrigger(t *testing.T) {
	w := newWindowScheduler()
	never := func(source Source, cutoff int64) int64 { return 0 }
	for now := int64(0); now < 100; now++ {
		w.evaluate(now, 90, 1200, 720, never)
	}
	assert.False(t, w.Active())
	assert.Equal(t, SourceA, w.nextCandidate, "the same source is retried every tick, never skipped")
}

func TestWindowScheduler_OnlyOneSourceActiveWhenAllEligible(t *testing.T) {
	w := newWindowScheduler()
	allEligible := func(source Source, cutoff int64) int64 { return 90 }
	w.evaluate(0, 90, 1200, 720, allEligible)
	assert.True(t, w.Active())
	assert.Equal(t, SourceA, w.ActiveSource(), "rotation order picks A first when all three sources are eligible")

	// While Active(A), B and C never get evaluated even though they are
	// also eligible.
	for now := int64(1); now < 720; now++ {
		w.evaluate(now, 90, 1200, 720, allEligible)
		assert.Equal(t, SourceA, w.ActiveSource())
	}
}
