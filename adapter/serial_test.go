package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSerialAdapter(t *testing.T) {
	sa := NewSerialAdapter("/dev/ttyUSB0", 19200)

	assert.NotNil(t, sa)
	assert.False(t, sa.IsOpen())
	assert.Equal(t, "/dev/ttyUSB0", sa.config.Name)
	assert.Equal(t, 19200, sa.config.Baud)
}

func TestSerialAdapterClosedOperations(t *testing.T) {
	sa := NewSerialAdapter("/dev/ttyUSB0", 19200)

	_, err := sa.Write([]byte{0x1B, 0x40})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not open")

	_, err = sa.Read(make([]byte, 1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not open")

	assert.NoError(t, sa.Close())
}

func TestSerialAdapterOpenMissingPort(t *testing.T) {
	sa := NewSerialAdapter("/dev/does-not-exist", 9600)

	err := sa.Open()
	require.Error(t, err)
	assert.False(t, sa.IsOpen())
}

func TestSerialAdapterOpenClose(t *testing.T) {
	sa := NewSerialAdapter("/dev/ttyUSB0", 19200)

	if err := sa.Open(); err != nil {
		t.Skip("No serial printer found, skipping test")
	}
	defer sa.Close()

	assert.True(t, sa.IsOpen())

	// Test double open
	err := sa.Open()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already open")

	err = sa.Close()
	require.NoError(t, err)
	assert.False(t, sa.IsOpen())
}
