package escpos

import (
	"image"
	"image/color"
)

// Image is a monochrome raster bitmap ready for transfer: row-major,
// 1 bit per pixel, 8 pixels packed per byte with the most significant bit
// as the leftmost pixel. Width must be a positive multiple of 8 and Data
// must hold exactly Width/8*Height bytes. Data may alias caller-owned
// memory; the driver never mutates it.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// The GS v 0 header encodes width-in-bytes and height as 16-bit values.
const maxRasterDim = 0xFFFF

// Validate checks the raster layout invariants. It is called by every
// image operation before any bytes are produced.
func (img Image) Validate() error {
	if img.Width <= 0 || img.Width%8 != 0 {
		return protocolErr(InvalidDimensions, "width %d must be a positive multiple of 8", img.Width)
	}
	if img.Width/8 > maxRasterDim {
		return protocolErr(InvalidDimensions, "width %d exceeds %d raster bytes", img.Width, maxRasterDim)
	}
	if img.Height <= 0 {
		return protocolErr(InvalidDimensions, "height %d must be positive", img.Height)
	}
	if img.Height > maxRasterDim {
		return protocolErr(InvalidDimensions, "height %d exceeds %d dots", img.Height, maxRasterDim)
	}
	if want := img.Width / 8 * img.Height; len(img.Data) != want {
		return protocolErr(InvalidDimensions, "data length %d, want %d for %dx%d", len(img.Data), want, img.Width, img.Height)
	}
	return nil
}

func (img Image) widthBytes() int {
	return img.Width / 8
}

// FromImage packs src into a printable bitmap. Pixels whose gray value is
// below threshold become black (bit set). The width is padded up to the
// next multiple of 8; padding pixels stay white.
func FromImage(src image.Image, threshold uint8) Image {
	bounds := src.Bounds()
	width := (bounds.Dx() + 7) &^ 7
	height := bounds.Dy()
	if height == 0 || width == 0 {
		return Image{}
	}
	stride := width / 8
	data := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := color.GrayModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if c.Y < threshold {
				data[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}

	return Image{Width: width, Height: height, Data: data}
}
