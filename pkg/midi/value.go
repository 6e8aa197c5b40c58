// Package midi implements the byte-level codec for MIDI short messages:
// range-validated value types, the 7-bit/nibble packing helpers, and the
// 14-bit control change message that is carried as a pair of ordinary
// control change messages on the wire.
package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is reported when a raw integer does not fit the bit
	// width of the value type being constructed.
	ErrOutOfRange = errors.New("value out of range")
	// ErrUnpairedController is reported when a controller number has no LSB
	// counterpart and therefore cannot address a 14-bit control change.
	ErrUnpairedController = errors.New("unpaired controller number")
)

// Channel is a MIDI channel, 0 through 15. It occupies the low nibble of a
// status byte.
type Channel uint8

// U7 is a 7-bit data value, 0 through 127.
type U7 uint8

// ControllerNumber addresses one of the 128 control change controllers.
// It shares the range of U7 but is a distinct type: a controller number is
// an address, not a magnitude, and the two must not be mixed up.
type ControllerNumber uint8

// U14 is a 14-bit value, 0 through 16383, carried on the wire as two 7-bit
// halves.
type U14 uint16

const (
	ChannelMax          uint8  = 0x0f
	U7Max               uint8  = 0x7f
	ControllerNumberMax uint8  = 0x7f
	U14Max              uint16 = 0x3fff
)

// NewChannel validates n and wraps it as a Channel.
func NewChannel(n uint8) (Channel, error) {
	if n > ChannelMax {
		return 0, fmt.Errorf("%w - channel %d does not fit in 4 bits", ErrOutOfRange, n)
	}
	return Channel(n), nil
}

// NewU7 validates n and wraps it as a U7.
func NewU7(n uint8) (U7, error) {
	if n > U7Max {
		return 0, fmt.Errorf("%w - value %d does not fit in 7 bits", ErrOutOfRange, n)
	}
	return U7(n), nil
}

// NewControllerNumber validates n and wraps it as a ControllerNumber.
func NewControllerNumber(n uint8) (ControllerNumber, error) {
	if n > ControllerNumberMax {
		return 0, fmt.Errorf("%w - controller number %d does not fit in 7 bits", ErrOutOfRange, n)
	}
	return ControllerNumber(n), nil
}

// NewU14 validates n and wraps it as a U14.
func NewU14(n uint16) (U14, error) {
	if n > U14Max {
		return 0, fmt.Errorf("%w - value %d does not fit in 14 bits", ErrOutOfRange, n)
	}
	return U14(n), nil
}

// The unchecked constructors skip validation. They are reserved for values
// whose range is already guaranteed by a mask, e.g. a nibble extracted from
// a status byte can never exceed 4 bits.

func channelUnchecked(n uint8) Channel {
	return Channel(n)
}

func u7Unchecked(n uint8) U7 {
	return U7(n)
}

func controllerNumberUnchecked(n uint8) ControllerNumber {
	return ControllerNumber(n)
}

func u14Unchecked(n uint16) U14 {
	return U14(n)
}

// Uint8 returns the raw channel number.
func (c Channel) Uint8() uint8 {
	return uint8(c)
}

// Uint8 returns the raw 7-bit value.
func (v U7) Uint8() uint8 {
	return uint8(v)
}

// Uint8 returns the raw controller number.
func (cn ControllerNumber) Uint8() uint8 {
	return uint8(cn)
}

// Uint16 returns the raw 14-bit value.
func (v U14) Uint16() uint16 {
	return uint16(v)
}
