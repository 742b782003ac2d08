package sim

import (
	"fmt"
	"strings"
)

// Role restricts which sources a conveyor may accept.
type Role int

const (
	RoleDedicatedA Role = iota
	RoleDedicatedB
	RoleDedicatedC
	RoleDynamic
)

func (r Role) String() string {
	switch r {
	case RoleDedicatedA:
		return "dedicated-A"
	case RoleDedicatedB:
		return "dedicated-B"
	case RoleDedicatedC:
		return "dedicated-C"
	case RoleDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Accepts reports whether a pallet of the given source may be enqueued onto
// a conveyor with this role.
func (r Role) Accepts(s Source) bool {
	switch r {
	case RoleDedicatedA:
		return s == SourceA
	case RoleDedicatedB:
		return s == SourceB
	case RoleDedicatedC:
		return s == SourceC
	case RoleDynamic:
		return true
	default:
		return false
	}
}

// dedicatedSource returns the source a dedicated role restricts to, and
// false for RoleDynamic.
func (r Role) dedicatedSource() (Source, bool) {
	switch r {
	case RoleDedicatedA:
		return SourceA, true
	case RoleDedicatedB:
		return SourceB, true
	case RoleDedicatedC:
		return SourceC, true
	default:
		return SourceNone, false
	}
}

// ErrFull is returned by Enqueue when the conveyor has no free capacity.
var ErrFull = fmt.Errorf("conveyor full")

// Conveyor is a bounded FIFO lane of pallets. Insertions occur at the tail
// (append) and removals occur only at the head (front); nothing is ever
// inserted between existing pallets and nothing but the head is ever
// removed, preserving strict production-order FIFO.
type Conveyor struct {
	Index    int
	Role     Role
	Capacity int
	cells    []*Pallet // cells[0] is the head (consumption end)
}

// NewConveyor constructs an empty conveyor with the given index, role and
// capacity.
func NewConveyor(index int, role Role, capacity int) *Conveyor {
	return &Conveyor{Index: index, Role: role, Capacity: capacity}
}

// CanEnqueue reports whether the conveyor has free capacity.
func (c *Conveyor) CanEnqueue() bool {
	return len(c.cells) < c.Capacity
}

// Enqueue appends a pallet at the tail. Returns ErrFull if the conveyor is
// at capacity. Performs no maturity check.
func (c *Conveyor) Enqueue(p *Pallet) error {
	if !c.CanEnqueue() {
		return ErrFull
	}
	c.cells = append(c.cells, p)
	return nil
}

// PeekHead returns the head pallet without removing it, or nil if empty.
func (c *Conveyor) PeekHead() *Pallet {
	if len(c.cells) == 0 {
		return nil
	}
	return c.cells[0]
}

// PopHeadIf removes and returns the head pallet if it exists and predicate
// holds for it at the given time; otherwise it leaves the conveyor
// untouched and returns nil. The head is never skipped: an immature or
// wrong-source head blocks the conveyor regardless of what lies behind it.
func (c *Conveyor) PopHeadIf(now int64, predicate func(p *Pallet, now int64) bool) *Pallet {
	head := c.PeekHead()
	if head == nil || !predicate(head, now) {
		return nil
	}
	c.cells = c.cells[1:]
	return head
}

// Len returns the number of pallets currently on the conveyor.
func (c *Conveyor) Len() int {
	return len(c.cells)
}

// Occupancy is an alias for Len, matching the vocabulary of the conveyor's
// external contract.
func (c *Conveyor) Occupancy() int {
	return len(c.cells)
}

// FreeCapacity returns the number of additional pallets the conveyor can
// accept.
func (c *Conveyor) FreeCapacity() int {
	return c.Capacity - len(c.cells)
}

// ContainsLot reports whether any pallet currently on the conveyor belongs
// to the given lot of the given source. Used by lot-affinity allocation.
func (c *Conveyor) ContainsLot(source Source, lot int64) bool {
	for _, p := range c.cells {
		if p.Source == source && p.Lot == lot {
			return true
		}
	}
	return false
}

// Cells returns the conveyor's contents in head-to-tail order. Callers must
// not mutate the returned slice.
func (c *Conveyor) Cells() []*Pallet {
	return c.cells
}

func (c *Conveyor) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("conveyor[%d:%s] [", c.Index, c.Role))
	for i, p := range c.cells {
		sb.WriteString(fmt.Sprintf("%s#%d", p.Source, p.ID))
		if i < len(c.cells)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
