package escpos

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTransport is an in-memory Transport for testing
type mockTransport struct {
	written   []byte
	writes    int
	failOn    int // 1-based Write call index that starts failing, 0 = never
	maxChunk  int // max bytes accepted per Write call, 0 = unlimited
	stall     bool
	responses []byte
	readErr   error
}

var errLinkDown = errors.New("link down")

func (m *mockTransport) Write(data []byte) (int, error) {
	m.writes++
	if m.failOn != 0 && m.writes >= m.failOn {
		return 0, errLinkDown
	}
	if m.stall {
		return 0, nil
	}
	n := len(data)
	if m.maxChunk > 0 && n > m.maxChunk {
		n = m.maxChunk
	}
	m.written = append(m.written, data[:n]...)
	return n, nil
}

func (m *mockTransport) Read(buf []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	n := copy(buf, m.responses)
	m.responses = m.responses[n:]
	return n, nil
}

// recordingDelayer records requested delays instead of sleeping
type recordingDelayer struct {
	delays []time.Duration
}

func (d *recordingDelayer) Delay(dur time.Duration) {
	d.delays = append(d.delays, dur)
}

func TestNewPrinter(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	assert.NotNil(t, printer)
	assert.False(t, printer.Bold())
	assert.Equal(t, UnderlineNone, printer.Underline())
	assert.Equal(t, AlignLeft, printer.Align())
}

func TestSetBoldSequence(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	require.NoError(t, printer.SetBold(true))
	assert.True(t, printer.Bold())

	require.NoError(t, printer.SetBold(false))
	assert.False(t, printer.Bold())

	assert.Equal(t, []byte{0x1B, 0x45, 0x01, 0x1B, 0x45, 0x00}, transport.written)
}

func TestWriteLine(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	require.NoError(t, printer.WriteLine("Hello"))
	assert.Equal(t, []byte("Hello\n"), transport.written)
}

func TestWriteRejectsControlBytes(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"ESC", "a\x1Bb"},
		{"GS", "a\x1Db"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &mockTransport{}
			printer := NewPrinter(transport)

			err := printer.Write(tc.text)
			assert.True(t, IsProtocol(err, MalformedInput))
			assert.Zero(t, transport.writes)

			err = printer.WriteLine(tc.text)
			assert.True(t, IsProtocol(err, MalformedInput))
			assert.Zero(t, transport.writes)
		})
	}
}

func TestStateUnchangedOnWriteFailure(t *testing.T) {
	transport := &mockTransport{failOn: 1}
	printer := NewPrinter(transport)

	err := printer.SetBold(true)
	assert.True(t, IsTransport(err))
	assert.False(t, printer.Bold())

	err = printer.SetUnderline(UnderlineDouble)
	assert.True(t, IsTransport(err))
	assert.Equal(t, UnderlineNone, printer.Underline())

	err = printer.SetAlign(AlignCenter)
	assert.True(t, IsTransport(err))
	assert.Equal(t, AlignLeft, printer.Align())
}

func TestShortWritesAreCompleted(t *testing.T) {
	// transport accepts at most 2 bytes per call
	transport := &mockTransport{maxChunk: 2}
	printer := NewPrinter(transport)

	require.NoError(t, printer.WriteLine("Hello"))
	assert.Equal(t, []byte("Hello\n"), transport.written)
	assert.Equal(t, 3, transport.writes)
}

func TestZeroProgressWriteFails(t *testing.T) {
	transport := &mockTransport{stall: true}
	printer := NewPrinter(transport)

	err := printer.SetBold(true)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.False(t, printer.Bold())
}

func TestTransportErrorWrapsUnderlying(t *testing.T) {
	transport := &mockTransport{failOn: 1}
	printer := NewPrinter(transport)

	err := printer.Feed(2)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, errLinkDown)
}

func TestInitializeResetsState(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	require.NoError(t, printer.SetBold(true))
	require.NoError(t, printer.SetAlign(AlignRight))

	require.NoError(t, printer.Initialize())
	assert.False(t, printer.Bold())
	assert.Equal(t, AlignLeft, printer.Align())
	assert.Equal(t, []byte{0x1B, 0x40}, transport.written[len(transport.written)-2:])
}

func TestFormattingCommands(t *testing.T) {
	testCases := []struct {
		name string
		op   func(*Printer) error
		want []byte
	}{
		{"Feed", func(p *Printer) error { return p.Feed(3) }, []byte{0x1B, 0x64, 0x03}},
		{"CutFull", func(p *Printer) error { return p.Cut(CutFull) }, []byte{0x1D, 0x56, 0x00}},
		{"CutPartial", func(p *Printer) error { return p.Cut(CutPartial) }, []byte{0x1D, 0x56, 0x01}},
		{"Underline", func(p *Printer) error { return p.SetUnderline(UnderlineSingle) }, []byte{0x1B, 0x2D, 0x01}},
		{"AlignCenter", func(p *Printer) error { return p.SetAlign(AlignCenter) }, []byte{0x1B, 0x61, 0x01}},
		{"FontB", func(p *Printer) error { return p.SetFont(FontB) }, []byte{0x1B, 0x4D, 0x01}},
		{"Size", func(p *Printer) error { return p.SetSize(2, 3) }, []byte{0x1D, 0x21, 0x23}},
		{"Invert", func(p *Printer) error { return p.SetInvert(true) }, []byte{0x1D, 0x42, 0x01}},
		{"Density", func(p *Printer) error { return p.SetDensity(Density4) }, []byte{0x1D, 0x7C, 0x04}},
		{"PrintSpeed", func(p *Printer) error { return p.SetPrintSpeed(Speed4) }, []byte{0x1F, 0x50, 0x03}},
		{"Raw", func(p *Printer) error { return p.Raw([]byte{0xAA, 0xBB}) }, []byte{0xAA, 0xBB}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &mockTransport{}
			printer := NewPrinter(transport)

			require.NoError(t, tc.op(printer))
			assert.Equal(t, tc.want, transport.written)
		})
	}
}

func TestOutOfRangeEnumsRejected(t *testing.T) {
	testCases := []struct {
		name string
		op   func(*Printer) error
	}{
		{"Align", func(p *Printer) error { return p.SetAlign(Align(9)) }},
		{"Underline", func(p *Printer) error { return p.SetUnderline(Underline(9)) }},
		{"Cut", func(p *Printer) error { return p.Cut(CutMode(9)) }},
		{"Font", func(p *Printer) error { return p.SetFont(Font(9)) }},
		{"Density", func(p *Printer) error { return p.SetDensity(Density(9)) }},
		{"PrintSpeed", func(p *Printer) error { return p.SetPrintSpeed(Speed(9)) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &mockTransport{}
			printer := NewPrinter(transport)

			err := tc.op(printer)
			assert.True(t, IsProtocol(err, MalformedInput))
			assert.Zero(t, transport.writes)
		})
	}

	// rejected setters leave the recorded state untouched
	transport := &mockTransport{}
	printer := NewPrinter(transport)
	require.Error(t, printer.SetAlign(Align(9)))
	assert.Equal(t, AlignLeft, printer.Align())
	require.Error(t, printer.SetUnderline(Underline(9)))
	assert.Equal(t, UnderlineNone, printer.Underline())
}

func TestEncodingIdempotent(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	require.NoError(t, printer.SetAlign(AlignRight))
	first := append([]byte(nil), transport.written...)

	transport.written = nil
	require.NoError(t, printer.SetAlign(AlignRight))

	assert.Equal(t, first, transport.written)
}
