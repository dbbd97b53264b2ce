package escpos

import "time"

// TimingModel paces chunked image transfer to a printer whose internal
// buffer is smaller than a full raster. Granularity is the number of
// bitmap bytes sent per chunk and DelayPerUnit the pause charged per
// started granularity unit. The model is pure; calibrate both values
// against the target printer hardware.
type TimingModel struct {
	Granularity  int
	DelayPerUnit time.Duration
}

// ChunkSize returns the number of bitmap bytes per transfer chunk.
func (m TimingModel) ChunkSize() int {
	return m.Granularity
}

// Delay returns how long to pause after sending chunkLen bytes:
// ceil(chunkLen/Granularity) * DelayPerUnit.
func (m TimingModel) Delay(chunkLen int) time.Duration {
	if m.Granularity <= 0 || chunkLen <= 0 {
		return 0
	}
	units := (chunkLen + m.Granularity - 1) / m.Granularity
	return time.Duration(units) * m.DelayPerUnit
}
