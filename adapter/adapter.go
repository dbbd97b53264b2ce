// Package adapter provides byte transports to physical printers over USB
// and serial links. Every adapter satisfies escpos.Transport once opened.
package adapter

// Adapter is a connection-managed printer transport
type Adapter interface {
	// Open opens the connection to the printer
	Open() error

	// Write sends data to the printer
	Write(data []byte) (int, error)

	// Read reads data from the printer
	Read(buf []byte) (int, error)

	// Close closes the connection to the printer
	Close() error

	// IsOpen returns whether the connection is open
	IsOpen() bool
}
