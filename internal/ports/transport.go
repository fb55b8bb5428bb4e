package ports

// Transport emits frame bytes on the link. The controller owns the transport
// exclusively for the duration of a run; nothing else writes to it.
type Transport interface {
	// Write sends one frame's bytes as a unit. A nil return means the whole
	// frame was handed to the link. Errors are fatal to the run; the
	// controller performs no retries.
	Write(p []byte) error

	// Close releases the underlying device. Safe to call more than once.
	Close() error
}
