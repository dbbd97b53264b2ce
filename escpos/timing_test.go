package escpos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimingModelDelay(t *testing.T) {
	model := TimingModel{Granularity: 4, DelayPerUnit: time.Millisecond}

	testCases := []struct {
		name     string
		chunkLen int
		want     time.Duration
	}{
		{"FullChunk", 4, time.Millisecond},
		{"PartialChunk", 1, time.Millisecond},
		{"TwoUnits", 5, 2 * time.Millisecond},
		{"ThreeUnits", 9, 3 * time.Millisecond},
		{"ZeroBytes", 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.Delay(tc.chunkLen))
		})
	}
}

func TestTimingModelDegenerate(t *testing.T) {
	assert.Equal(t, time.Duration(0), TimingModel{}.Delay(100))
	assert.Equal(t, time.Duration(0), TimingModel{Granularity: -1, DelayPerUnit: time.Second}.Delay(8))
}

func TestTimingModelChunkSize(t *testing.T) {
	assert.Equal(t, 64, TimingModel{Granularity: 64}.ChunkSize())
}
