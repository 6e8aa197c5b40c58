package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawControlChangeWireForm(t *testing.T) {
	ch, err := NewChannel(5)
	require.NoError(t, err)
	cn, err := NewControllerNumber(7)
	require.NoError(t, err)
	v, err := NewU7(100)
	require.NoError(t, err)

	msg := RawShortMessageFactory{}.ControlChange(ch, cn, v)
	assert.Equal(t, [3]byte{0xB5, 7, 100}, msg.Bytes())

	assert.Equal(t, byte(0xB5), msg.StatusByte())
	assert.Equal(t, ch, msg.Channel())
	assert.Equal(t, cn, msg.ControllerNumber())
	assert.Equal(t, v, msg.Value())
}
