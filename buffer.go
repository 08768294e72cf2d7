package tlc59xx

import "fmt"

// rgbStride is the channel group width used by SetRGB. RGB LEDs on these
// boards sit on three consecutive outputs; other groupings only need this
// constant changed.
const rgbStride = 3

// fullBrightness is the maximum value of the TLC59711 7-bit global
// brightness fields.
const fullBrightness = 0x7F

// ChannelBuffer holds the grayscale value of every channel across a chain of
// chips. It is pure state: mutating it has no hardware effect until the
// owning Dev writes it out.
type ChannelBuffer struct {
	variant Variant
	devices int
	values  []uint16
	// Global brightness (R, G, B), TLC59711 control word only.
	bc [3]uint8
}

// NewChannelBuffer returns a buffer for devices chained chips with every
// channel off. devices may be 0, in which case the buffer serializes to
// nothing.
func NewChannelBuffer(v Variant, devices int) (*ChannelBuffer, error) {
	if devices < 0 {
		return nil, fmt.Errorf("tlc59xx: invalid device count %d", devices)
	}
	return &ChannelBuffer{
		variant: v,
		devices: devices,
		values:  make([]uint16, devices*v.Channels()),
		bc:      [3]uint8{fullBrightness, fullBrightness, fullBrightness},
	}, nil
}

// Len returns the total channel count of the chain.
func (b *ChannelBuffer) Len() int {
	return len(b.values)
}

// Devices returns the number of chained chips.
func (b *ChannelBuffer) Devices() int {
	return b.devices
}

// Variant returns the chip family the buffer was built for.
func (b *ChannelBuffer) Variant() Variant {
	return b.variant
}

// SetChannel stores v for the global channel ch. Channel 0 is the first
// output of the chip closest to the SPI master. v is truncated to the
// variant's bit width: the stored value is v & (1<<bits - 1), never a
// saturation.
func (b *ChannelBuffer) SetChannel(ch int, v uint16) error {
	if ch < 0 || ch >= len(b.values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrChannelRange, ch, len(b.values))
	}
	b.values[ch] = v & b.variant.mask()
	return nil
}

// Channel reads back the stored value of channel ch.
func (b *ChannelBuffer) Channel(ch int) (uint16, error) {
	if ch < 0 || ch >= len(b.values) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrChannelRange, ch, len(b.values))
	}
	return b.values[ch], nil
}

// SetRGB sets the three consecutive channels of group. Group 0 covers
// channels 0..2, group 1 channels 3..5, and so on across chip boundaries.
// Each component is truncated like SetChannel.
func (b *ChannelBuffer) SetRGB(group int, r, g, bl uint16) error {
	ch := group * rgbStride
	if group < 0 || ch+rgbStride > len(b.values) {
		return fmt.Errorf("%w: rgb group %d not in [0, %d)", ErrChannelRange, group, len(b.values)/rgbStride)
	}
	b.values[ch] = r & b.variant.mask()
	b.values[ch+1] = g & b.variant.mask()
	b.values[ch+2] = bl & b.variant.mask()
	return nil
}

// SetBrightness sets the 7-bit global brightness fields carried in the
// TLC59711 control word. Values are masked to 7 bits. The TLC5947 has no
// control word; the setting is kept but never serialized for it.
func (b *ChannelBuffer) SetBrightness(r, g, bl uint8) {
	b.bc = [3]uint8{r & fullBrightness, g & fullBrightness, bl & fullBrightness}
}

// Reset turns every channel off. Brightness is left untouched.
func (b *ChannelBuffer) Reset() {
	for i := range b.values {
		b.values[i] = 0
	}
}
