package sim

// PalletLog is an append-only record of every pallet produced, indexed for
// per-source queries and later consumption timestamping. Entries are
// pointer-shared with the conveyor cell holding the pallet, so updates to
// TConsumed made when a pallet is popped are visible through the log
// without a separate write-back.
type PalletLog struct {
	entries []*Pallet
	bySrc   map[Source][]*Pallet
}

// NewPalletLog returns an empty log.
func NewPalletLog() *PalletLog {
	return &PalletLog{bySrc: make(map[Source][]*Pallet, 3)}
}

// Append records a newly produced pallet.
func (l *PalletLog) Append(p *Pallet) {
	l.entries = append(l.entries, p)
	l.bySrc[p.Source] = append(l.bySrc[p.Source], p)
}

// All returns every pallet ever produced, in production order.
func (l *PalletLog) All() []*Pallet {
	return l.entries
}

// BySource returns every pallet ever produced by the given source, in
// production order.
func (l *PalletLog) BySource(s Source) []*Pallet {
	return l.bySrc[s]
}

// CountBySource returns the number of pallets ever produced by the given
// source.
func (l *PalletLog) CountBySource(s Source) int {
	return len(l.bySrc[s])
}

// CountConsumedBySource returns the number of pallets of the given source
// that have been consumed.
func (l *PalletLog) CountConsumedBySource(s Source) int {
	n := 0
	for _, p := range l.bySrc[s] {
		if p.Consumed() {
			n++
		}
	}
	return n
}
