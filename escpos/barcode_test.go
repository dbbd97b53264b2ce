package escpos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBarcode(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	require.NoError(t, printer.PrintBarcode(Code128, "No12345678"))

	want := []byte{
		0x1D, 0x68, 0x50, // height 80 dots
		0x1D, 0x77, 0x02, // module width 2
		0x1D, 0x48, 0x02, // HRI below
		0x1D, 0x6B, 0x49, 0x0A, // GS k Code128, length 10
	}
	want = append(want, []byte("No12345678")...)
	assert.Equal(t, want, transport.written)
	assert.Equal(t, 1, transport.writes)
}

func TestPrintBarcodeHRI(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	require.NoError(t, printer.PrintBarcodeHRI(EAN13, "4006381333931", HRINone))
	assert.Equal(t, []byte{0x1D, 0x48, 0x00}, transport.written[6:9])
	assert.Equal(t, byte(EAN13), transport.written[11])
}

func TestPrintBarcodeUnsupportedSymbology(t *testing.T) {
	transport := &mockTransport{}
	printer := NewPrinter(transport)

	err := printer.PrintBarcode(Symbology(0x99), "1234")
	assert.True(t, IsProtocol(err, UnsupportedSymbology))
	assert.Zero(t, transport.writes)
}

func TestPrintBarcodeMalformedData(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"Empty", ""},
		{"TooLong", strings.Repeat("1", 256)},
		{"ControlByte", "12\x1D34"},
		{"HighByte", "12\xFF34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &mockTransport{}
			printer := NewPrinter(transport)

			err := printer.PrintBarcode(Code39, tc.data)
			assert.True(t, IsProtocol(err, MalformedInput))
			assert.Zero(t, transport.writes)
		})
	}
}
