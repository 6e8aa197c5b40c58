package midi

import "fmt"

// ControlChange14BitMessage is one logical control change event with 14-bit
// resolution, 16384 steps instead of 128. MIDI systems emit such an event
// as two ordinary control change messages in a row: the first addressed to
// the MSB controller number carrying the high 7 bits of the value, the
// second addressed to the paired LSB controller number carrying the low 7
// bits.
//
// The value is immutable after construction and safe to share between
// goroutines.
type ControlChange14BitMessage struct {
	channel             Channel
	msbControllerNumber ControllerNumber
	value               U14
}

// NewControlChange14BitMessage builds a 14-bit control change event. It
// fails with ErrUnpairedController when msb has no LSB counterpart, i.e.
// when it cannot address the most significant half of a 14-bit control
// change.
func NewControlChange14BitMessage(ch Channel, msb ControllerNumber, value U14) (ControlChange14BitMessage, error) {
	if _, ok := msb.CorrespondingLSB(); !ok {
		return ControlChange14BitMessage{}, fmt.Errorf(
			"%w - controller %d cannot carry the MSB of a 14-bit control change",
			ErrUnpairedController, msb.Uint8())
	}
	return ControlChange14BitMessage{
		channel:             ch,
		msbControllerNumber: msb,
		value:               value,
	}, nil
}

// Channel returns the channel of the event.
func (m ControlChange14BitMessage) Channel() Channel {
	return m.channel
}

// MSBControllerNumber returns the controller number that carries the most
// significant 7 bits of the value.
func (m ControlChange14BitMessage) MSBControllerNumber() ControllerNumber {
	return m.msbControllerNumber
}

// LSBControllerNumber returns the controller number that carries the least
// significant 7 bits of the value. It is derived from the MSB controller
// number on every call, never stored, so the two can't drift apart.
func (m ControlChange14BitMessage) LSBControllerNumber() ControllerNumber {
	lsb, _ := m.msbControllerNumber.CorrespondingLSB() // validated at construction
	return lsb
}

// Value returns the 14-bit value of the event.
func (m ControlChange14BitMessage) Value() U14 {
	return m.value
}

// ToShortMessages translates msg into the two short messages that encode it
// on the wire. The MSB-numbered message comes first, the LSB-numbered one
// second; the order is part of the wire convention, so a receiver applying
// the messages as they arrive ends up with the correct value.
func ToShortMessages[T any](msg ControlChange14BitMessage, factory ShortMessageFactory[T]) [2]T {
	high, low := Split14(msg.Value())
	return [2]T{
		factory.ControlChange(msg.Channel(), msg.MSBControllerNumber(), high),
		factory.ControlChange(msg.Channel(), msg.LSBControllerNumber(), low),
	}
}

// ToRawShortMessages is ToShortMessages specialized to the 3-byte wire
// representation.
func (m ControlChange14BitMessage) ToRawShortMessages() [2]RawShortMessage {
	return ToShortMessages[RawShortMessage](m, RawShortMessageFactory{})
}
