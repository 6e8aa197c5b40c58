package midi

// ControlChangeTag is the status byte of a control change message before
// the channel is OR-ed into its low nibble.
const ControlChangeTag byte = 0xB0

// ShortMessageFactory constructs short messages of a concrete type T. The
// 14-bit codec is generic over this capability, so it can target any
// message representation that offers a control change constructor.
type ShortMessageFactory[T any] interface {
	ControlChange(ch Channel, cn ControllerNumber, v U7) T
}

// RawShortMessage is a short message in its 3-byte wire form: a status byte
// followed by two data bytes.
type RawShortMessage [3]byte

// RawShortMessageFactory builds RawShortMessages. It satisfies
// ShortMessageFactory[RawShortMessage].
type RawShortMessageFactory struct{}

// ControlChange builds the wire form of a control change message.
func (RawShortMessageFactory) ControlChange(ch Channel, cn ControllerNumber, v U7) RawShortMessage {
	return RawShortMessage{
		BuildStatusByte(ControlChangeTag, ch),
		cn.Uint8(),
		v.Uint8(),
	}
}

// StatusByte returns the first byte of the message.
func (m RawShortMessage) StatusByte() byte {
	return m[0]
}

// Channel returns the channel encoded in the low nibble of the status byte.
func (m RawShortMessage) Channel() Channel {
	return ChannelFromStatusByte(m[0])
}

// ControllerNumber returns the first data byte read as a controller number.
// Only meaningful for control-change-shaped messages.
func (m RawShortMessage) ControllerNumber() ControllerNumber {
	return controllerNumberUnchecked(m[1] & 0x7f)
}

// Value returns the second data byte read as a 7-bit value. Only meaningful
// for control-change-shaped messages.
func (m RawShortMessage) Value() U7 {
	return u7Unchecked(m[2] & 0x7f)
}

// Bytes returns the message as it appears on the wire.
func (m RawShortMessage) Bytes() [3]byte {
	return m
}
