package adapter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tarm/serial"
)

// SerialAdapter talks to a printer over a serial (RS-232/UART) link.
type SerialAdapter struct {
	config serial.Config
	port   *serial.Port
	isOpen bool
	mu     sync.Mutex
}

// NewSerialAdapter creates an adapter for the given port name (e.g.
// "/dev/ttyUSB0" or "COM3") and baud rate. The port is not opened until
// Open is called.
func NewSerialAdapter(name string, baud int) *SerialAdapter {
	return &SerialAdapter{
		config: serial.Config{
			Name: name,
			Baud: baud,
			Size: 8,
		},
	}
}

// Open opens the serial port
func (a *SerialAdapter) Open() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.isOpen {
		return errors.New("port already open")
	}

	port, err := serial.OpenPort(&a.config)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", a.config.Name, err)
	}

	a.port = port
	a.isOpen = true
	return nil
}

// Write sends data to the printer
func (a *SerialAdapter) Write(data []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return 0, errors.New("port not open")
	}

	n, err := a.port.Write(data)
	if err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}
	return n, nil
}

// Read reads data from the printer
func (a *SerialAdapter) Read(buf []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return 0, errors.New("port not open")
	}

	n, err := a.port.Read(buf)
	if err != nil {
		return n, fmt.Errorf("read failed: %w", err)
	}
	return n, nil
}

// Close closes the serial port
func (a *SerialAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return nil
	}

	err := a.port.Close()
	a.port = nil
	a.isOpen = false
	if err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}

// IsOpen returns whether the port is open
func (a *SerialAdapter) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isOpen
}
