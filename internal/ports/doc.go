// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world: they define what the transmission loop needs from external systems
// without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Transport]: writes frame bytes to the physical or simulated link
//   - [Reporter]: renders transmission progress for the operator
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (serial port, in-memory recorder, console output).
package ports
