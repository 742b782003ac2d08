package sim

// ProducerState tracks one of the three phase-1 producers.
type ProducerState struct {
	Source           Source
	ActivationTime   int64
	Active           bool
	NextEmissionTime int64 // next minute at which an emission attempt occurs
	BlockedMinutes   int64
	LotCounter       int64
}

// newProducerState builds a producer whose first emission attempt is one
// full period after activation: the producer becomes able to attempt
// deposits at ActivationTime, but its schedule of instants (a multiple of
// x counting from activation) begins at activation+x. With the default
// parameters this means A's first window can only trigger once lot_size
// pallets have accumulated, 44 hours after t=0.
func newProducerState(source Source, activation, x int64) *ProducerState {
	return &ProducerState{
		Source:           source,
		ActivationTime:   activation,
		NextEmissionTime: activation + x,
	}
}

// reset restores the producer to its activation-time state.
func (p *ProducerState) reset(x int64) {
	p.Active = false
	p.NextEmissionTime = p.ActivationTime + x
	p.BlockedMinutes = 0
	p.LotCounter = 0
}
