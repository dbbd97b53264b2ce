package escpos

import (
	"errors"
	"fmt"
)

// ProtocolKind classifies protocol-level failures detected before or after
// talking to the printer, as opposed to failures of the transport itself.
type ProtocolKind int

const (
	// InvalidDimensions means an image violated the raster layout rules
	// (width not a positive multiple of 8, or data length mismatch).
	InvalidDimensions ProtocolKind = iota

	// MalformedInput means caller-supplied text or parameters contained
	// protocol-reserved control bytes or were otherwise unusable.
	MalformedInput

	// UnsupportedSymbology means a barcode symbology code outside the
	// GS k function range was requested.
	UnsupportedSymbology

	// MalformedResponse means a status query got a short or invalid reply.
	MalformedResponse
)

// String returns a human-readable name for the kind.
func (k ProtocolKind) String() string {
	switch k {
	case InvalidDimensions:
		return "invalid dimensions"
	case MalformedInput:
		return "malformed input"
	case UnsupportedSymbology:
		return "unsupported barcode symbology"
	case MalformedResponse:
		return "malformed response"
	default:
		return fmt.Sprintf("protocol error %d", int(k))
	}
}

// ProtocolError reports a parameter or response validation failure.
// Nothing has been written to the transport when a ProtocolError is
// returned from an operation's validation phase.
type ProtocolError struct {
	Kind   ProtocolKind
	Detail string
}

func (e *ProtocolError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// TransportError wraps an I/O failure reported by the underlying transport.
// The wrapped error is preserved verbatim and reachable via errors.Unwrap.
type TransportError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err originated in the transport layer.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsProtocol reports whether err is a protocol error of the given kind.
func IsProtocol(err error, kind ProtocolKind) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Kind == kind
}

func protocolErr(kind ProtocolKind, format string, args ...any) error {
	return &ProtocolError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func transportErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
