package tlc59xx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/funtimes-tlc59xx"
)

var TestChainSerializesToExpectedLength = []struct {
	Variant Variant
	Devices int
	Expect  int
}{
	{TLC5947, 0, 0},
	{TLC5947, 1, 36},
	{TLC5947, 2, 72},
	{TLC5947, 16, 576},
	{TLC59711, 0, 0},
	{TLC59711, 1, 28},
	{TLC59711, 2, 56},
	{TLC59711, 16, 448},
}

func TestSerializeLength(t *testing.T) {
	for _, v := range TestChainSerializesToExpectedLength {
		b, err := NewChannelBuffer(v.Variant, v.Devices)
		require.NoError(t, err)
		assert.Len(t, b.Serialize(), v.Expect, "%s x%d", v.Variant, v.Devices)
	}
}

func TestSerializeDarkChainIsAllZero5947(t *testing.T) {
	b, err := NewChannelBuffer(TLC5947, 2)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 72), b.Serialize())
}

func TestSerializePacking5947(t *testing.T) {
	b, err := NewChannelBuffer(TLC5947, 1)
	require.NoError(t, err)

	// Channel 0 is the last 12 bits shifted out; 5000 stores as 904 (0x388).
	require.NoError(t, b.SetChannel(0, 5000))
	got := b.Serialize()
	require.Len(t, got, 36)
	assert.Equal(t, make([]byte, 33), got[:33], "channels 23..2 stay dark")
	assert.Equal(t, []byte{0x00, 0x03, 0x88}, got[33:])

	// Channel 23 is the first 12 bits shifted out.
	b.Reset()
	require.NoError(t, b.SetChannel(23, 0xABC))
	got = b.Serialize()
	assert.Equal(t, []byte{0xAB, 0xC0, 0x00}, got[:3])
	assert.Equal(t, make([]byte, 33), got[3:])
}

func TestSerializeChainOrder(t *testing.T) {
	// The second chip's data must lead the stream: bits transmitted first
	// end up the furthest down the chain.
	b, err := NewChannelBuffer(TLC5947, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetChannel(24, 0xABC))

	got := b.Serialize()
	require.Len(t, got, 72)
	assert.Equal(t, make([]byte, 36), got[36:], "first chip's block stays dark")
	assert.NotEqual(t, make([]byte, 36), got[:36], "second chip's block carries the value")
	assert.Equal(t, []byte{0x00, 0x0A, 0xBC}, got[33:36])
}

func TestSerializeControlWord59711(t *testing.T) {
	b, err := NewChannelBuffer(TLC59711, 1)
	require.NoError(t, err)

	// Full brightness default: write command 0x25, OUTTMG|TMGRST|DSPRPT set,
	// three 7-bit brightness fields at 127.
	got := b.Serialize()
	require.Len(t, got, 28)
	assert.Equal(t, []byte{0x96, 0xDF, 0xFF, 0xFF}, got[:4])
	assert.Equal(t, make([]byte, 24), got[4:])

	b.SetBrightness(0, 0, 0)
	got = b.Serialize()
	assert.Equal(t, []byte{0x96, 0xC0, 0x00, 0x00}, got[:4])

	// Brightness masks to 7 bits.
	b.SetBrightness(0xFF, 0xFF, 0xFF)
	got = b.Serialize()
	assert.Equal(t, []byte{0x96, 0xDF, 0xFF, 0xFF}, got[:4])
}

func TestSerializeChannelOrder59711(t *testing.T) {
	b, err := NewChannelBuffer(TLC59711, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetChannel(0, 0x1234))
	require.NoError(t, b.SetChannel(11, 0xABCD))

	got := b.Serialize()
	require.Len(t, got, 28)
	// Channel 11 leads right after the control word, channel 0 closes the
	// chip's block, both big-endian.
	assert.Equal(t, []byte{0xAB, 0xCD}, got[4:6])
	assert.Equal(t, []byte{0x12, 0x34}, got[26:])
	assert.Equal(t, make([]byte, 20), got[6:26])
}

func TestSerializeChainOrder59711(t *testing.T) {
	b, err := NewChannelBuffer(TLC59711, 2)
	require.NoError(t, err)
	// Channel 12 is the second chip's channel 0.
	require.NoError(t, b.SetChannel(12, 0xFFFF))

	got := b.Serialize()
	require.Len(t, got, 56)
	assert.Equal(t, []byte{0xFF, 0xFF}, got[26:28], "second chip's block 0 closes its span")
	if !bytes.Equal(make([]byte, 24), got[32:]) {
		t.Fatalf("first chip's grayscale data should stay dark, got % x", got[32:])
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	b, err := NewChannelBuffer(TLC5947, 4)
	require.NoError(t, err)
	for i := 0; i < b.Len(); i++ {
		require.NoError(t, b.SetChannel(i, uint16(i*131)))
	}
	assert.Equal(t, b.Serialize(), b.Serialize())
}
