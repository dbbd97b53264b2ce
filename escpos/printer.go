// Package escpos drives ESC/POS-compatible thermal printers over an
// arbitrary byte transport. Command encoding is pure and allocation-light;
// all I/O goes through the Transport supplied at construction.
package escpos

import (
	"io"
	"time"
)

// Transport is the byte link to the printer. Both methods block according
// to the semantics of the implementer; any returned error aborts the
// current printer operation. adapter.Adapter satisfies this interface.
type Transport interface {
	// Write sends data to the printer, returning the number of bytes written.
	Write(data []byte) (int, error)

	// Read reads a printer response into buf, returning the number of bytes read.
	Read(buf []byte) (int, error)
}

// Delayer blocks the calling goroutine for at least the given duration.
// It is consumed only by the paced image transfer path.
type Delayer interface {
	Delay(d time.Duration)
}

type sleepDelayer struct{}

func (sleepDelayer) Delay(d time.Duration) {
	time.Sleep(d)
}

// Printer drives a single ESC/POS printer. It exclusively owns its
// Transport and tracks the formatting state last acknowledged by a
// successful write. Printer is not safe for concurrent use.
type Printer struct {
	transport Transport
	delayer   Delayer

	bold      bool
	underline Underline
	align     Align
}

// NewPrinter creates a printer over the given transport. The paced image
// path sleeps with time.Sleep.
func NewPrinter(transport Transport) *Printer {
	return NewPrinterWithDelayer(transport, sleepDelayer{})
}

// NewPrinterWithDelayer creates a printer with a custom delay source.
func NewPrinterWithDelayer(transport Transport, delayer Delayer) *Printer {
	return &Printer{
		transport: transport,
		delayer:   delayer,
	}
}

// Bold returns the bold flag as last successfully written.
func (p *Printer) Bold() bool {
	return p.bold
}

// Underline returns the underline mode as last successfully written.
func (p *Printer) Underline() Underline {
	return p.underline
}

// Align returns the alignment as last successfully written.
func (p *Printer) Align() Align {
	return p.align
}

// writeAll writes the full sequence, looping over short writes. A transport
// error or a zero-progress write aborts with a TransportError.
func (p *Printer) writeAll(data []byte) error {
	for len(data) > 0 {
		n, err := p.transport.Write(data)
		if err != nil {
			return transportErr("write", err)
		}
		if n <= 0 {
			return transportErr("write", io.ErrShortWrite)
		}
		data = data[n:]
	}
	return nil
}

// checkText rejects text containing protocol-reserved control bytes that
// the printer would interpret as command prefixes.
func checkText(text string) error {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case esc, gs:
			return protocolErr(MalformedInput, "reserved control byte 0x%02X at offset %d", text[i], i)
		}
	}
	return nil
}

// Initialize resets the printer (ESC @) and clears the recorded
// formatting state.
func (p *Printer) Initialize() error {
	if err := p.writeAll(cmdInitialize()); err != nil {
		return err
	}
	p.bold = false
	p.underline = UnderlineNone
	p.align = AlignLeft
	return nil
}

// Raw sends bytes to the printer unmodified.
func (p *Printer) Raw(data []byte) error {
	return p.writeAll(data)
}

// Write sends text to the printer without a line terminator. Text must not
// contain the 0x1B or 0x1D control bytes.
func (p *Printer) Write(text string) error {
	if err := checkText(text); err != nil {
		return err
	}
	return p.writeAll([]byte(text))
}

// WriteLine sends text followed by a line feed.
func (p *Printer) WriteLine(text string) error {
	if err := checkText(text); err != nil {
		return err
	}
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, '\n')
	return p.writeAll(buf)
}

// Feed advances the paper by the given number of lines.
func (p *Printer) Feed(lines uint8) error {
	return p.writeAll(cmdFeed(lines))
}

// Cut cuts the paper using the given mode.
func (p *Printer) Cut(mode CutMode) error {
	if mode > CutPartial {
		return protocolErr(MalformedInput, "cut mode 0x%02X", byte(mode))
	}
	return p.writeAll(cmdCut(mode))
}

// SetBold enables or disables emphasized printing. The recorded flag is
// updated only after the bytes reach the transport.
func (p *Printer) SetBold(on bool) error {
	if err := p.writeAll(cmdBold(on)); err != nil {
		return err
	}
	p.bold = on
	return nil
}

// SetUnderline sets the underline mode.
func (p *Printer) SetUnderline(mode Underline) error {
	if mode > UnderlineDouble {
		return protocolErr(MalformedInput, "underline mode 0x%02X", byte(mode))
	}
	if err := p.writeAll(cmdUnderline(mode)); err != nil {
		return err
	}
	p.underline = mode
	return nil
}

// SetAlign sets horizontal text alignment.
func (p *Printer) SetAlign(align Align) error {
	if align > AlignRight {
		return protocolErr(MalformedInput, "alignment 0x%02X", byte(align))
	}
	if err := p.writeAll(cmdAlign(align)); err != nil {
		return err
	}
	p.align = align
	return nil
}

// SetFont selects the character font.
func (p *Printer) SetFont(font Font) error {
	if font > FontB {
		return protocolErr(MalformedInput, "font 0x%02X", byte(font))
	}
	return p.writeAll(cmdFont(font))
}

// SetSize sets the character width and height multipliers (0-7 each).
func (p *Printer) SetSize(width, height uint8) error {
	return p.writeAll(cmdSize(width, height))
}

// SetInvert enables or disables white-on-black printing.
func (p *Printer) SetInvert(on bool) error {
	return p.writeAll(cmdInvert(on))
}

// SetDensity sets the print density level.
func (p *Printer) SetDensity(level Density) error {
	if level > Density8 {
		return protocolErr(MalformedInput, "density level 0x%02X", byte(level))
	}
	return p.writeAll(cmdDensity(level))
}

// SetPrintSpeed sets the print speed.
func (p *Printer) SetPrintSpeed(speed Speed) error {
	if speed > Speed4 {
		return protocolErr(MalformedInput, "print speed 0x%02X", byte(speed))
	}
	return p.writeAll(cmdPrintSpeed(speed))
}
