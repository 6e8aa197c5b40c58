package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit14(t *testing.T) {
	v, err := NewU14(1057) // 0b00010000100001
	require.NoError(t, err)

	high, low := Split14(v)
	assert.Equal(t, uint8(8), high.Uint8())
	assert.Equal(t, uint8(33), low.Uint8())
}

func TestJoin14RoundTrip(t *testing.T) {
	for n := uint16(0); n <= U14Max; n++ {
		high, low := Split14(U14(n))
		assert.Equal(t, U14(n), Join14(high, low))
	}
}

func TestSplitJoin14Inverse(t *testing.T) {
	// the other direction of the round trip
	for h := uint8(0); h <= U7Max; h++ {
		for l := uint8(0); l <= U7Max; l += 7 {
			high, low := Split14(Join14(U7(h), U7(l)))
			assert.Equal(t, U7(h), high)
			assert.Equal(t, U7(l), low)
		}
	}
}

func TestNibbleRoundTrip(t *testing.T) {
	for b := 0; b <= 0xff; b++ {
		high, low := SplitNibbles(byte(b))
		assert.Equal(t, byte(b), JoinNibbles(high, low))
	}
}

func TestSplitNibbles(t *testing.T) {
	high, low := SplitNibbles(0xB5)
	assert.Equal(t, uint8(0xb), high.Uint8())
	assert.Equal(t, uint8(0x5), low.Uint8())
}

func TestBuildStatusByte(t *testing.T) {
	ch, err := NewChannel(5)
	require.NoError(t, err)

	assert.Equal(t, byte(0xB5), BuildStatusByte(0xB0, ch))
	assert.Equal(t, ch, ChannelFromStatusByte(0xB5))
}

func TestChannelFromStatusByteMasksHighNibble(t *testing.T) {
	for b := 0; b <= 0xff; b++ {
		ch := ChannelFromStatusByte(byte(b))
		assert.LessOrEqual(t, ch.Uint8(), ChannelMax)
		assert.Equal(t, uint8(b)&0x0f, ch.Uint8())
	}
}
