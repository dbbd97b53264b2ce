package escpos

// PrintImage validates img, emits the GS v 0 raster header and writes the
// packed bitmap without pacing. Use this path when the printer buffer can
// absorb the whole image.
func (p *Printer) PrintImage(img Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if err := p.writeAll(cmdRasterHeader(img.widthBytes(), img.Height)); err != nil {
		return err
	}
	return p.writeAll(img.Data)
}

// PrintImageWithDelay transfers img in chunks of model.ChunkSize() bytes,
// blocking via the printer's Delayer after every chunk except the last.
// This bounds the write rate so small printer buffers are not overrun;
// the printer exposes no flow control of its own. Any transport failure
// aborts the transfer immediately.
func (p *Printer) PrintImageWithDelay(img Image, model TimingModel) error {
	if err := img.Validate(); err != nil {
		return err
	}
	chunkSize := model.ChunkSize()
	if chunkSize <= 0 {
		return protocolErr(MalformedInput, "timing granularity %d must be positive", chunkSize)
	}
	if err := p.writeAll(cmdRasterHeader(img.widthBytes(), img.Height)); err != nil {
		return err
	}

	data := img.Data
	for len(data) > 0 {
		chunk := data
		if len(chunk) > chunkSize {
			chunk = chunk[:chunkSize]
		}
		if err := p.writeAll(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
		if len(data) > 0 {
			p.delayer.Delay(model.Delay(len(chunk)))
		}
	}
	return nil
}
