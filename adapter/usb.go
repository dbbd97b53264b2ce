package adapter

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/gousb"
)

// USB printer-class interface code
// Reference: http://www.usb.org/developers/defined_class
const ifaceClassPrinter = 0x07

// USBAdapter talks to a USB printer identified by vendor and product ID.
// Open claims the printer-class interface and resolves its bulk endpoints.
type USBAdapter struct {
	vid, pid    uint16
	ctx         *gousb.Context
	device      *gousb.Device
	iface       *gousb.Interface
	outEndpoint *gousb.OutEndpoint
	inEndpoint  *gousb.InEndpoint
	isOpen      bool
	mu          sync.Mutex
}

// NewUSBAdapter creates an adapter for the printer with the given VID/PID.
// The device is not touched until Open is called.
func NewUSBAdapter(vid, pid uint16) *USBAdapter {
	return &USBAdapter{vid: vid, pid: pid}
}

// Open opens the USB device and claims the printer interface
func (a *USBAdapter) Open() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.isOpen {
		return errors.New("device already open")
	}

	ctx := gousb.NewContext()
	device, err := ctx.OpenDeviceWithVIDPID(gousb.ID(a.vid), gousb.ID(a.pid))
	if err != nil {
		ctx.Close()
		return fmt.Errorf("failed to open device %04x:%04x: %w", a.vid, a.pid, err)
	}
	if device == nil {
		ctx.Close()
		return fmt.Errorf("device %04x:%04x not found", a.vid, a.pid)
	}

	// Set auto-detach kernel driver on Linux
	if runtime.GOOS == "linux" {
		device.SetAutoDetach(true)
	}

	cfgNum, err := device.ActiveConfigNum()
	if err != nil {
		device.Close()
		ctx.Close()
		return fmt.Errorf("failed to get active config: %w", err)
	}

	cfg, err := device.Config(cfgNum)
	if err != nil {
		device.Close()
		ctx.Close()
		return fmt.Errorf("failed to get config: %w", err)
	}
	defer cfg.Close()

	// Find printer interface
	printerIfaceNum := -1
	for _, iface := range cfg.Desc.Interfaces {
		for _, alt := range iface.AltSettings {
			if alt.Class == ifaceClassPrinter {
				printerIfaceNum = iface.Number
				break
			}
		}
		if printerIfaceNum >= 0 {
			break
		}
	}

	if printerIfaceNum < 0 {
		device.Close()
		ctx.Close()
		return errors.New("no printer interface found")
	}

	iface, err := cfg.Interface(printerIfaceNum, 0)
	if err != nil {
		device.Close()
		ctx.Close()
		return fmt.Errorf("failed to claim interface: %w", err)
	}

	var out *gousb.OutEndpoint
	var in *gousb.InEndpoint
	for _, epDesc := range iface.Setting.Endpoints {
		if epDesc.Direction == gousb.EndpointDirectionOut && out == nil {
			if ep, err := iface.OutEndpoint(epDesc.Number); err == nil {
				out = ep
			}
		}
		if epDesc.Direction == gousb.EndpointDirectionIn && in == nil {
			if ep, err := iface.InEndpoint(epDesc.Number); err == nil {
				in = ep
			}
		}
	}

	if out == nil {
		iface.Close()
		device.Close()
		ctx.Close()
		return errors.New("cannot find output endpoint from printer")
	}

	a.ctx = ctx
	a.device = device
	a.iface = iface
	a.outEndpoint = out
	a.inEndpoint = in
	a.isOpen = true

	return nil
}

// Write sends data to the printer
func (a *USBAdapter) Write(data []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return 0, errors.New("device not open")
	}

	n, err := a.outEndpoint.Write(data)
	if err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}
	return n, nil
}

// Read reads data from the printer
func (a *USBAdapter) Read(buf []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return 0, errors.New("device not open")
	}
	if a.inEndpoint == nil {
		return 0, errors.New("input endpoint not available")
	}

	n, err := a.inEndpoint.Read(buf)
	if err != nil {
		return n, fmt.Errorf("read failed: %w", err)
	}
	return n, nil
}

// Close releases the interface and closes the USB device
func (a *USBAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isOpen {
		return nil
	}

	var errs []error

	if a.iface != nil {
		a.iface.Close()
		a.iface = nil
	}
	if a.device != nil {
		if err := a.device.Close(); err != nil {
			errs = append(errs, err)
		}
		a.device = nil
	}
	if a.ctx != nil {
		if err := a.ctx.Close(); err != nil {
			errs = append(errs, err)
		}
		a.ctx = nil
	}

	a.outEndpoint = nil
	a.inEndpoint = nil
	a.isOpen = false

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// IsOpen returns whether the device is open
func (a *USBAdapter) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isOpen
}
