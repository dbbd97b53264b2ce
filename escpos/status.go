package escpos

// StatusKind selects which DLE EOT real-time status byte to request.
type StatusKind byte

const (
	StatusPrinter StatusKind = 0x01
	StatusOffline StatusKind = 0x02
	StatusError   StatusKind = 0x03
	StatusPaper   StatusKind = 0x04
)

// Every DLE EOT response byte carries fixed marker bits: bit0=0, bit1=1,
// bit4=1, bit7=0. Anything else is not a status byte.
const (
	statusFixedMask  = 0x93
	statusFixedValue = 0x12
)

// Status is a decoded DLE EOT response. Raw always holds the response
// byte; the boolean fields are meaningful for the kind they belong to and
// false otherwise.
type Status struct {
	Kind StatusKind
	Raw  byte

	// StatusPrinter
	DrawerOpen bool
	Offline    bool

	// StatusOffline
	CoverOpen  bool
	FeedButton bool

	// StatusError
	CutterError      bool
	UnrecoverableErr bool
	RecoverableErr   bool

	// StatusPaper
	PaperNearEnd bool
	PaperOut     bool
}

func decodeStatus(kind StatusKind, b byte) Status {
	s := Status{Kind: kind, Raw: b}
	switch kind {
	case StatusPrinter:
		s.DrawerOpen = b&0x04 != 0
		s.Offline = b&0x08 != 0
	case StatusOffline:
		s.CoverOpen = b&0x04 != 0
		s.FeedButton = b&0x08 != 0
	case StatusError:
		s.CutterError = b&0x08 != 0
		s.UnrecoverableErr = b&0x20 != 0
		s.RecoverableErr = b&0x40 != 0
	case StatusPaper:
		s.PaperNearEnd = b&0x0C != 0
		s.PaperOut = b&0x60 != 0
	}
	return s
}

// ReadStatus sends a DLE EOT request and blocks on the transport for the
// single response byte. A failed read is a transport error; an empty read
// or a byte violating the fixed marker bits is a MalformedResponse.
func (p *Printer) ReadStatus(kind StatusKind) (Status, error) {
	if kind < StatusPrinter || kind > StatusPaper {
		return Status{}, protocolErr(MalformedInput, "status kind 0x%02X", byte(kind))
	}
	if err := p.writeAll(cmdStatusRequest(kind)); err != nil {
		return Status{}, err
	}

	var buf [1]byte
	n, err := p.transport.Read(buf[:])
	if err != nil {
		return Status{}, transportErr("read", err)
	}
	if n == 0 {
		return Status{}, protocolErr(MalformedResponse, "no status byte received")
	}
	b := buf[0]
	if b&statusFixedMask != statusFixedValue {
		return Status{}, protocolErr(MalformedResponse, "fixed marker bits violated in 0x%02X", b)
	}
	return decodeStatus(kind, b), nil
}
