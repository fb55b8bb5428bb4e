// Package serial implements the Transport port on a physical RS485 link
// reached through a USB serial adapter.
package serial

import (
	"fmt"
	"time"

	serialport "github.com/albenik/go-serial/v2"

	"github.com/bft-labs/framepump/internal/domain"
)

// Config holds the parameters passed through to the device open call.
type Config struct {
	// Device is the serial device path, e.g. /dev/ttyUSB0.
	Device string

	// BaudRate is the line speed in bits per second.
	BaudRate int

	// Timeout bounds both reads and writes on the port.
	Timeout time.Duration
}

// DefaultConfig returns the standard RS485 adapter settings: /dev/ttyUSB0
// at 9600 baud with one-second timeouts. Data bits 8, parity none and one
// stop bit are fixed.
func DefaultConfig() Config {
	return Config{
		Device:   "/dev/ttyUSB0",
		BaudRate: 9600,
		Timeout:  time.Second,
	}
}

// Transport writes frames to a serial device. It implements ports.Transport.
type Transport struct {
	port *serialport.Port
	cfg  Config
}

// Open opens the configured device with 8 data bits, no parity and one stop
// bit. The returned error wraps domain.ErrConnection when the device cannot
// be opened.
func Open(cfg Config) (*Transport, error) {
	timeoutMs := int(cfg.Timeout / time.Millisecond)
	port, err := serialport.Open(cfg.Device,
		serialport.WithBaudrate(cfg.BaudRate),
		serialport.WithDataBits(8),
		serialport.WithParity(serialport.NoParity),
		serialport.WithStopBits(serialport.OneStopBit),
		serialport.WithReadTimeout(timeoutMs),
		serialport.WithWriteTimeout(timeoutMs),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConnection, cfg.Device, err)
	}

	// Give the adapter a moment to settle before the first write.
	time.Sleep(100 * time.Millisecond)

	return &Transport{port: port, cfg: cfg}, nil
}

// Write sends one frame's bytes and flushes driver buffers first so stale
// data never interleaves with the frame. Errors wrap domain.ErrWrite.
func (t *Transport) Write(p []byte) error {
	if err := t.port.ResetInputBuffer(); err != nil {
		return fmt.Errorf("%w: reset input: %v", domain.ErrWrite, err)
	}
	if err := t.port.ResetOutputBuffer(); err != nil {
		return fmt.Errorf("%w: reset output: %v", domain.ErrWrite, err)
	}

	n, err := t.port.Write(p)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: short write: %d of %d bytes", domain.ErrWrite, n, len(p))
	}
	return nil
}

// Close releases the device.
func (t *Transport) Close() error {
	return t.port.Close()
}

// Device returns the configured device path for display.
func (t *Transport) Device() string {
	return t.cfg.Device
}
