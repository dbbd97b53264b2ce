package escpos

import (
	"github.com/skip2/go-qrcode"
)

// QRCode renders text as a QR symbol packed into a printable Image. Each
// QR module becomes a scale x scale block of pixels; the overall width is
// padded up to a multiple of 8 with white pixels on the right.
func QRCode(text string, scale int) (Image, error) {
	if scale < 1 {
		scale = 1
	}
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return Image{}, protocolErr(MalformedInput, "QR encode: %v", err)
	}

	modules := code.Bitmap()
	side := len(modules) * scale
	width := (side + 7) &^ 7
	stride := width / 8
	data := make([]byte, stride*side)

	for my, row := range modules {
		for mx, dark := range row {
			if !dark {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				y := my*scale + dy
				for dx := 0; dx < scale; dx++ {
					x := mx*scale + dx
					data[y*stride+x/8] |= 0x80 >> (x % 8)
				}
			}
		}
	}

	return Image{Width: width, Height: side, Data: data}, nil
}

// PrintQR renders text as a QR symbol and prints it unpaced.
func (p *Printer) PrintQR(text string, scale int) error {
	img, err := QRCode(text, scale)
	if err != nil {
		return err
	}
	return p.PrintImage(img)
}
