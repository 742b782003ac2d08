package sim

import (
	"fmt"
	"sort"
)

// ConsumptionStrategy chooses a conveyor to drain during an active window.
// Implementations must return a conveyor whose head is a mature pallet of
// activeSource, or ok=false. Both strategies must respect strict FIFO: a
// conveyor whose head is immature or of the wrong source is skipped
// regardless of what lies behind the head.
type ConsumptionStrategy interface {
	Select(activeSource Source, now int64, conveyors []*Conveyor) (index int, ok bool)
}

// NewConsumptionStrategy builds a consumption strategy by name. An empty
// name defaults to first_three. Panics on an unrecognized name; callers
// should validate the name against ValidConsumptionStrategies (typically
// via Config.Validate) before construction.
func NewConsumptionStrategy(name string, maturationMinutes int64) ConsumptionStrategy {
	switch name {
	case "", ConsumptionFirstThree:
		return &FirstThreeConsumption{maturation: maturationMinutes}
	case ConsumptionLongestHead:
		return &LongestHeadConsumption{maturation: maturationMinutes}
	default:
		panic(fmt.Sprintf("unknown consumption strategy %q", name))
	}
}

// readyHead reports whether c's head is a mature pallet of activeSource,
// without removing it.
func readyHead(c *Conveyor, activeSource Source, now, maturationMinutes int64) bool {
	head := c.PeekHead()
	return head != nil && head.Source == activeSource && head.Mature(now, maturationMinutes)
}

// FirstThreeConsumption (C1) scans the three dedicated conveyors of
// activeSource in row order first, then the dynamic conveyors in row
// order, and picks the first whose head is ready.
type FirstThreeConsumption struct {
	maturation int64
}

func (s *FirstThreeConsumption) Select(activeSource Source, now int64, conveyors []*Conveyor) (int, bool) {
	for _, r := range dedicatedRows(activeSource, conveyors) {
		if readyHead(conveyors[r], activeSource, now, s.maturation) {
			return r, true
		}
	}
	for _, r := range dynamicRows(conveyors) {
		if readyHead(conveyors[r], activeSource, now, s.maturation) {
			return r, true
		}
	}
	return 0, false
}

// LongestHeadConsumption (C2) picks, among all conveyors (dedicated of
// activeSource plus dynamic) with a ready head, the one with the greatest
// length, breaking ties by lowest row index. Draining the deepest backlog
// first reduces peak WIP.
type LongestHeadConsumption struct {
	maturation int64
}

func (s *LongestHeadConsumption) Select(activeSource Source, now int64, conveyors []*Conveyor) (int, bool) {
	candidates := append(dedicatedRows(activeSource, conveyors), dynamicRows(conveyors)...)
	sort.Ints(candidates)
	bestLen := -1
	best := -1
	for _, r := range candidates {
		c := conveyors[r]
		if !readyHead(c, activeSource, now, s.maturation) {
			continue
		}
		if c.Len() > bestLen {
			bestLen = c.Len()
			best = r
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
