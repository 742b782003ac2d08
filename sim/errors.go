package sim

import "fmt"

// ConfigurationError reports parameters that violate preconditions at
// construction or reset time. It is always returned, never panicked.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// InvariantViolation indicates a bug in the engine or in a strategy
// implementation: a state that must never occur (broken FIFO order,
// capacity exceeded, consumption of an immature pallet). The engine panics
// with this type rather than returning it, since there is no well-defined
// recovery; the caller sees a fatal halt carrying diagnostic context.
type InvariantViolation struct {
	Msg           string
	Now           int64
	ConveyorIndex int
	PalletID      int64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation at t=%d (conveyor=%d, pallet=%d): %s",
		e.Now, e.ConveyorIndex, e.PalletID, e.Msg)
}

func (e *Engine) haltf(conveyorIndex int, palletID int64, format string, args ...any) {
	panic(&InvariantViolation{
		Msg:           fmt.Sprintf(format, args...),
		Now:           e.now,
		ConveyorIndex: conveyorIndex,
		PalletID:      palletID,
	})
}
