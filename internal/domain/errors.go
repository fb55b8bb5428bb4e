package domain

import "errors"

// Domain errors represent error conditions in the framepump domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrEmptyFile is returned when a frame file yields no frames.
	ErrEmptyFile = errors.New("framepump: no frames in file")

	// ErrConnection is returned when the serial device cannot be opened.
	ErrConnection = errors.New("framepump: cannot open device")

	// ErrWrite is returned when a write to the link fails mid-run.
	ErrWrite = errors.New("framepump: write failed")

	// ErrInvalidState is returned when the controller is used out of order,
	// e.g. Run called while a run is already in progress.
	ErrInvalidState = errors.New("framepump: invalid state")
)
