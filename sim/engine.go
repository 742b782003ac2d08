package sim

import (
	"github.com/sirupsen/logrus"
)

// Engine orchestrates producers, buffer, scheduler, and strategies. It owns
// simulated time and every Conveyor, ProducerState and the PalletLog;
// strategies are invoked with a read-only or limited-write view and hold no
// engine state of their own. The core is single-threaded and cooperative:
// simulated time advances only when Step is called.
type Engine struct {
	cfg       Config
	now       int64
	conveyors []*Conveyor
	producers map[Source]*ProducerState
	log       *PalletLog
	consumed  []ConsumptionRecord

	alloc     AllocationStrategy
	consume   ConsumptionStrategy
	scheduler *WindowScheduler

	nextPalletID int64
}

// NewEngine validates cfg and constructs an Engine. Returns
// *ConfigurationError if cfg violates any precondition; never panics.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		producers: make(map[Source]*ProducerState, 3),
		log:       NewPalletLog(),
		scheduler: newWindowScheduler(),
	}
	e.build()
	return e, nil
}

func (e *Engine) build() {
	e.conveyors = make([]*Conveyor, e.cfg.Rows)
	for i, role := range e.cfg.RoleLayout {
		e.conveyors[i] = NewConveyor(i, role, e.cfg.RowCapacity)
	}
	for _, s := range Sources {
		e.producers[s] = newProducerState(s, e.cfg.activationFor(s), e.cfg.XMinutes)
	}
	e.alloc = NewAllocationStrategy(e.cfg.AllocationStrategy, e.cfg.Weights)
	e.consume = NewConsumptionStrategy(e.cfg.ConsumptionStrategy, e.cfg.MaturationMinutes)
}

// Reset restores t=0 state with the original configuration.
func (e *Engine) Reset() {
	e.now = 0
	e.log = NewPalletLog()
	e.consumed = nil
	e.nextPalletID = 0
	e.scheduler.reset()
	for _, p := range e.producers {
		p.reset(e.cfg.XMinutes)
	}
	e.build()
}

// Step advances simulated time by tickMinutes one minute at a time,
// applying the fixed per-minute ordering (producers, then scheduler, then
// consumption) at each minute, and returns the snapshot as of the final
// minute.
func (e *Engine) Step(tickMinutes int64) Snapshot {
	for i := int64(0); i < tickMinutes; i++ {
		e.tick()
	}
	return e.Snapshot()
}

func (e *Engine) tick() {
	e.now++

	for _, source := range Sources {
		e.driveProducer(e.producers[source])
	}

	wasActive, prevSource := e.scheduler.Active(), e.scheduler.ActiveSource()
	e.scheduler.evaluate(e.now, e.cfg.LotSize(), e.cfg.MaturationMinutes, e.cfg.WindowMinutes, e.countBufferedBySource)
	if wasActive && e.scheduler.ActiveSource() != prevSource {
		logrus.Infof("t=%d window closed for %s", e.now, prevSource)
	}
	if e.scheduler.Active() && e.scheduler.ActiveSource() != prevSource {
		logrus.Infof("t=%d window opened for %s until t=%d", e.now, e.scheduler.ActiveSource(), e.scheduler.WindowEnd())
	}

	for e.scheduler.Active() && e.scheduler.NextConsumeTime() <= e.now && e.now < e.scheduler.WindowEnd() {
		if !e.attemptConsumption() {
			break
		}
	}
}

// driveProducer runs one producer's step-2 logic: activation, then a single
// emission attempt if its schedule has come due.
func (e *Engine) driveProducer(p *ProducerState) {
	if !p.Active && e.now >= p.ActivationTime {
		p.Active = true
	}
	if !p.Active || p.NextEmissionTime > e.now {
		return
	}

	pallet := &Pallet{
		ID:        e.nextPalletID,
		Source:    p.Source,
		Lot:       p.LotCounter,
		TProd:     p.NextEmissionTime,
		TConsumed: unconsumed,
	}

	index, ok := e.alloc.Allocate(pallet, e.conveyors)
	if !ok {
		p.BlockedMinutes++
		return
	}
	if err := e.conveyors[index].Enqueue(pallet); err != nil {
		// The strategy claimed capacity that isn't there: a bug in the
		// strategy or in Conveyor bookkeeping, not a modeled shortage.
		e.haltf(index, pallet.ID, "allocation strategy chose full conveyor: %v", err)
	}

	e.nextPalletID++
	e.log.Append(pallet)
	p.LotCounter++
	p.NextEmissionTime += e.cfg.XMinutes

	logrus.Debugf("t=%d produced %s#%d lot=%d -> conveyor %d", e.now, pallet.Source, pallet.ID, pallet.Lot, index)
}

// attemptConsumption performs one consumption attempt and reports whether a
// pallet was consumed. false means the active window's slot is retried on
// the next tick without advancing NextConsumeTime.
func (e *Engine) attemptConsumption() bool {
	activeSource := e.scheduler.ActiveSource()
	index, ok := e.consume.Select(activeSource, e.now, e.conveyors)
	if !ok {
		return false
	}

	predicate := func(p *Pallet, now int64) bool {
		return p.Source == activeSource && p.Mature(now, e.cfg.MaturationMinutes)
	}
	p := e.conveyors[index].PopHeadIf(e.now, predicate)
	if p == nil {
		e.haltf(index, -1, "consumption strategy selected conveyor %d whose head is not a ready pallet of %s", index, activeSource)
	}

	p.TConsumed = e.now
	e.consumed = append(e.consumed, ConsumptionRecord{
		Source:           p.Source,
		Lot:              p.Lot,
		PalletID:         p.ID,
		TProdMinutes:     p.TProd,
		TConsumedMinutes: p.TConsumed,
	})
	e.scheduler.nextConsumeTime += e.cfg.ConsumptionPeriod()

	logrus.Debugf("t=%d consumed %s#%d lot=%d wait=%d from conveyor %d", e.now, p.Source, p.ID, p.Lot, p.WaitMinutes(), index)
	return true
}

// countBufferedBySource counts pallets of source still on some conveyor
// (not yet consumed) with t_prod <= cutoff. Used by the window scheduler's
// trigger condition.
func (e *Engine) countBufferedBySource(source Source, cutoff int64) int64 {
	var n int64
	for _, c := range e.conveyors {
		for _, p := range c.Cells() {
			if p.Source == source && p.TProd <= cutoff {
				n++
			}
		}
	}
	return n
}

// Snapshot returns now, per-conveyor contents, per-producer counters, and
// current window state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{Now: e.now}

	snap.Conveyors = make([]ConveyorView, len(e.conveyors))
	for i, c := range e.conveyors {
		cells := c.Cells()
		views := make([]PalletView, len(cells))
		for j, p := range cells {
			views[j] = PalletView{
				ID:     p.ID,
				Source: p.Source,
				Lot:    p.Lot,
				TProd:  p.TProd,
				Mature: p.Mature(e.now, e.cfg.MaturationMinutes),
			}
		}
		snap.Conveyors[i] = ConveyorView{Index: c.Index, Role: c.Role, Capacity: c.Capacity, Pallets: views}
	}

	snap.Producers = make([]ProducerView, 0, 3)
	for _, source := range Sources {
		p := e.producers[source]
		snap.Producers = append(snap.Producers, ProducerView{
			Source:           p.Source,
			Active:           p.Active,
			NextEmissionTime: p.NextEmissionTime,
			BlockedMinutes:   p.BlockedMinutes,
		})
	}

	snap.Window = WindowView{
		Active:          e.scheduler.Active(),
		ActiveSource:    e.scheduler.ActiveSource(),
		WindowStart:     e.scheduler.WindowStart(),
		WindowEnd:       e.scheduler.WindowEnd(),
		NextConsumeTime: e.scheduler.NextConsumeTime(),
	}
	return snap
}

// ConsumptionLog returns every finalized consumption record so far, in
// consumption order.
func (e *Engine) ConsumptionLog() []ConsumptionRecord {
	return e.consumed
}

// Now returns the current simulated minute.
func (e *Engine) Now() int64 {
	return e.now
}

// Config returns the engine's construction configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// PalletLog exposes the production log for counting-law tests and
// diagnostics.
func (e *Engine) PalletLog() *PalletLog {
	return e.log
}
