package tlc59xx

import (
	"fmt"
	"strings"

	"periph.io/x/conn/v3/physic"
)

// Variant selects which chip family a chain is built from. All chips in a
// chain must be the same variant.
type Variant int

const (
	// TLC5947 is the 24 channel, 12-bit grayscale part.
	TLC5947 Variant = iota
	// TLC59711 is the 12 channel, 16-bit grayscale part. Each chip wants a
	// 32-bit control word ahead of its grayscale data.
	TLC59711
)

// Channels returns the number of outputs on a single chip.
func (v Variant) Channels() int {
	if v == TLC59711 {
		return 12
	}
	return 24
}

// Bits returns the grayscale resolution per channel.
func (v Variant) Bits() int {
	if v == TLC59711 {
		return 16
	}
	return 12
}

func (v Variant) mask() uint16 {
	return uint16(1<<uint(v.Bits()) - 1)
}

// bytesPerDevice is the serialized size of one chip, control word included.
func (v Variant) bytesPerDevice() int {
	if v == TLC59711 {
		return 4 + 12*2
	}
	return 24 * 12 / 8
}

// defaultFreq is a conservative SPI clock for each part. The TLC5947 shift
// register is rated to 30MHz, the TLC59711 to 10MHz.
func (v Variant) defaultFreq() physic.Frequency {
	if v == TLC59711 {
		return 10 * physic.MegaHertz
	}
	return 15 * physic.MegaHertz
}

// expand8 scales an 8-bit color component to the variant's full grayscale
// range, mapping 0x00 to 0 and 0xFF to full scale.
func (v Variant) expand8(b uint8) uint16 {
	if v == TLC59711 {
		return uint16(b)<<8 | uint16(b)
	}
	return uint16(b)<<4 | uint16(b)>>4
}

func (v Variant) String() string {
	if v == TLC59711 {
		return "tlc59711"
	}
	return "tlc5947"
}

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "tlc5947", "5947":
		return TLC5947, nil
	case "tlc59711", "59711":
		return TLC59711, nil
	}
	return TLC5947, fmt.Errorf("tlc59xx: unknown variant %q", s)
}
