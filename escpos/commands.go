package escpos

// Control bytes that introduce ESC/POS command sequences
// Reference: Epson ESC/POS Application Programming Guide
const (
	esc = 0x1B
	gs  = 0x1D
	dle = 0x10
	us  = 0x1F
)

// Align selects horizontal text alignment (ESC a).
type Align byte

const (
	AlignLeft   Align = 0x00
	AlignCenter Align = 0x01
	AlignRight  Align = 0x02
)

// Underline selects the underline style (ESC -).
type Underline byte

const (
	UnderlineNone   Underline = 0x00
	UnderlineSingle Underline = 0x01
	UnderlineDouble Underline = 0x02
)

// CutMode selects full or partial paper cut (GS V).
type CutMode byte

const (
	CutFull    CutMode = 0x00
	CutPartial CutMode = 0x01
)

// Font selects the built-in character font (ESC M).
type Font byte

const (
	FontA Font = 0x00
	FontB Font = 0x01
)

// Density selects the print density level (GS |).
type Density byte

const (
	Density0 Density = iota
	Density1
	Density2
	Density3
	Density4
	Density5
	Density6
	Density7
	Density8
)

// Speed selects the print speed (US P).
type Speed byte

const (
	Speed1 Speed = 0x00
	Speed2 Speed = 0x01
	Speed3 Speed = 0x02
	Speed4 Speed = 0x03
)

func boolByte(on bool) byte {
	if on {
		return 0x01
	}
	return 0x00
}

func cmdInitialize() []byte {
	return []byte{esc, 0x40}
}

func cmdBold(on bool) []byte {
	return []byte{esc, 0x45, boolByte(on)}
}

func cmdUnderline(mode Underline) []byte {
	return []byte{esc, 0x2D, byte(mode)}
}

func cmdAlign(align Align) []byte {
	return []byte{esc, 0x61, byte(align)}
}

func cmdFeed(lines uint8) []byte {
	return []byte{esc, 0x64, lines}
}

func cmdCut(mode CutMode) []byte {
	return []byte{gs, 0x56, byte(mode)}
}

func cmdFont(font Font) []byte {
	return []byte{esc, 0x4D, byte(font)}
}

// cmdSize packs width and height multipliers into the GS ! parameter byte.
// Multipliers above 7 are clamped; the printer rejects larger values.
func cmdSize(width, height uint8) []byte {
	if width > 7 {
		width = 7
	}
	if height > 7 {
		height = 7
	}
	return []byte{gs, 0x21, (width << 4) | height}
}

func cmdInvert(on bool) []byte {
	return []byte{gs, 0x42, boolByte(on)}
}

func cmdDensity(level Density) []byte {
	return []byte{gs, 0x7C, byte(level)}
}

func cmdPrintSpeed(speed Speed) []byte {
	return []byte{us, 0x50, byte(speed)}
}

// cmdRasterHeader builds GS v 0 with mode 0 (normal density). widthBytes and
// height are encoded as little-endian 16-bit pairs; the packed bitmap bytes
// must follow immediately.
func cmdRasterHeader(widthBytes, height int) []byte {
	return []byte{
		gs, 0x76, 0x30, 0x00,
		byte(widthBytes), byte(widthBytes >> 8),
		byte(height), byte(height >> 8),
	}
}

func cmdBarcodeHeight(dots uint8) []byte {
	return []byte{gs, 0x68, dots}
}

func cmdBarcodeWidth(module uint8) []byte {
	return []byte{gs, 0x77, module}
}

func cmdBarcodeHRI(pos HRIPosition) []byte {
	return []byte{gs, 0x48, byte(pos)}
}

// cmdBarcode builds GS k function B: symbology code, length byte, then data.
func cmdBarcode(sym Symbology, data []byte) []byte {
	out := make([]byte, 0, 4+len(data))
	out = append(out, gs, 0x6B, byte(sym), byte(len(data)))
	return append(out, data...)
}

func cmdStatusRequest(kind StatusKind) []byte {
	return []byte{dle, 0x04, byte(kind)}
}
