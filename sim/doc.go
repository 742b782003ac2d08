// Package sim provides the core discrete-time simulation engine for the
// pallet line: three staggered producers feeding a twelve-conveyor
// maturation buffer, drained by a rotating twelve-hour consumption window.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - pallet.go: Pallet and Source, the atomic units flowing through the line
//   - conveyor.go: the bounded FIFO buffer lane and its invariants
//   - producer.go: per-source production schedule and staggered activation
//   - scheduler.go: the window state machine (Idle / Active(source))
//   - engine.go: the tick loop tying producers, buffer, scheduler and
//     strategies together
//
// # Key Interfaces
//
// The extension points are single-method interfaces, invoked synchronously
// by Engine and holding no engine-owned state:
//   - AllocationStrategy: choose a conveyor for a newly produced pallet
//   - ConsumptionStrategy: choose a conveyor to drain during an active window
//
// Engine, Conveyor, ProducerState, WindowScheduler and PalletLog are the only
// stateful types; strategies are stateless operators or hold only
// strategy-local bookkeeping (e.g. a round-robin cursor).
package sim
