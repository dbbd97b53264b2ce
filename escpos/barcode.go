package escpos

// Symbology identifies a barcode encoding by its GS k function B code.
type Symbology byte

const (
	UPCA    Symbology = 0x41
	UPCE    Symbology = 0x42
	EAN13   Symbology = 0x43
	EAN8    Symbology = 0x44
	Code39  Symbology = 0x45
	ITF     Symbology = 0x46
	Codabar Symbology = 0x47
	Code93  Symbology = 0x48
	Code128 Symbology = 0x49
)

// HRIPosition selects where the human-readable interpretation is printed
// relative to the bars (GS H).
type HRIPosition byte

const (
	HRINone  HRIPosition = 0x00
	HRIAbove HRIPosition = 0x01
	HRIBelow HRIPosition = 0x02
	HRIBoth  HRIPosition = 0x03
)

// Default bar geometry sent before each barcode. 80 dots tall, module
// width 2 prints reliably on common 58mm and 80mm heads.
const (
	defaultBarcodeHeight = 80
	defaultBarcodeWidth  = 2
)

func (s Symbology) valid() bool {
	return s >= UPCA && s <= Code128
}

// PrintBarcode prints data as a barcode of the given symbology with the
// human-readable text below the bars. The height/width prelude and the
// GS k body are written as one sequence; validation failures produce no
// transport writes.
func (p *Printer) PrintBarcode(sym Symbology, data string) error {
	return p.PrintBarcodeHRI(sym, data, HRIBelow)
}

// PrintBarcodeHRI is PrintBarcode with an explicit HRI position.
func (p *Printer) PrintBarcodeHRI(sym Symbology, data string, hri HRIPosition) error {
	if !sym.valid() {
		return protocolErr(UnsupportedSymbology, "code 0x%02X", byte(sym))
	}
	if hri > HRIBoth {
		return protocolErr(MalformedInput, "HRI position 0x%02X", byte(hri))
	}
	if len(data) == 0 || len(data) > 255 {
		return protocolErr(MalformedInput, "barcode data length %d, want 1-255", len(data))
	}
	for i := 0; i < len(data); i++ {
		if data[i] < 0x20 || data[i] > 0x7E {
			return protocolErr(MalformedInput, "barcode data byte 0x%02X at offset %d", data[i], i)
		}
	}

	seq := make([]byte, 0, 9+4+len(data))
	seq = append(seq, cmdBarcodeHeight(defaultBarcodeHeight)...)
	seq = append(seq, cmdBarcodeWidth(defaultBarcodeWidth)...)
	seq = append(seq, cmdBarcodeHRI(hri)...)
	seq = append(seq, cmdBarcode(sym, []byte(data))...)
	return p.writeAll(seq)
}
