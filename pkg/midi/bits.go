package midi

// Pure bit-packing helpers. Inputs are already-validated value types, so
// none of these can fail; outputs built by masking use the unchecked
// constructors because the mask itself establishes the range.

// Split14 breaks a 14-bit value into its high and low 7-bit halves.
func Split14(v U14) (high, low U7) {
	high = u7Unchecked(uint8((v.Uint16() >> 7) & 0x7f))
	low = u7Unchecked(uint8(v.Uint16() & 0x7f))
	return high, low
}

// Join14 rebuilds a 14-bit value from its two 7-bit halves. It is the exact
// inverse of Split14.
func Join14(high, low U7) U14 {
	return u14Unchecked((uint16(high.Uint8()) << 7) | uint16(low.Uint8()))
}

// SplitNibbles breaks a byte into its high and low 4-bit halves.
func SplitNibbles(b byte) (high, low Channel) {
	high = channelUnchecked((b >> 4) & 0x0f)
	low = channelUnchecked(b & 0x0f)
	return high, low
}

// JoinNibbles rebuilds a byte from two nibbles. It is the exact inverse of
// SplitNibbles.
func JoinNibbles(high, low Channel) byte {
	return (high.Uint8() << 4) | low.Uint8()
}

// BuildStatusByte combines a message type tag, which occupies the high
// nibble with its low nibble zero, and a channel into a status byte.
func BuildStatusByte(typeTag byte, ch Channel) byte {
	return typeTag | ch.Uint8()
}

// ChannelFromStatusByte reads the channel out of the low nibble of a status
// byte.
func ChannelFromStatusByte(b byte) Channel {
	return channelUnchecked(b & 0x0f)
}
