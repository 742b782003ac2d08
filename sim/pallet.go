package sim

import "fmt"

// Source identifies one of the three phase-1 producers.
type Source int

const (
	SourceNone Source = iota
	SourceA
	SourceB
	SourceC
)

// Sources lists the three producer sources in fixed rotation and tie-break
// order: A, then B, then C.
var Sources = [3]Source{SourceA, SourceB, SourceC}

func (s Source) String() string {
	switch s {
	case SourceA:
		return "A"
	case SourceB:
		return "B"
	case SourceC:
		return "C"
	case SourceNone:
		return "none"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Next returns the following source in the fixed A -> B -> C -> A rotation.
func (s Source) Next() Source {
	switch s {
	case SourceA:
		return SourceB
	case SourceB:
		return SourceC
	case SourceC:
		return SourceA
	default:
		return SourceA
	}
}

// unconsumed marks a Pallet that has not yet been popped from its conveyor.
const unconsumed = int64(-1)

// Pallet is the atomic unit produced, buffered, and consumed by the line.
type Pallet struct {
	ID        int64
	Source    Source
	Lot       int64
	TProd     int64 // simulated minute of creation
	TConsumed int64 // simulated minute of consumption, or unconsumed
}

// Consumed reports whether the pallet has left the buffer.
func (p *Pallet) Consumed() bool {
	return p.TConsumed != unconsumed
}

// Mature reports whether the pallet has sat for at least maturationMinutes
// as of now.
func (p *Pallet) Mature(now, maturationMinutes int64) bool {
	return now-p.TProd >= maturationMinutes
}

// WaitMinutes returns t_consumed - t_prod. Only meaningful once Consumed.
func (p *Pallet) WaitMinutes() int64 {
	return p.TConsumed - p.TProd
}
