// Package domain contains the core domain entities and value objects for framepump.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (serial ports, terminals, logging)
// and contains only pure values and business rules.
//
// # Entities
//
//   - [Frame]: one binary record transmitted as a unit over the link
//   - [FrameSet]: the ordered sequence of frames; order is the transmission order
//   - [RunState]: mutable counters owned by the transmission controller
//   - [Snapshot]: an immutable view of RunState handed to reporters
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
