package tlc59xx

// Serialize renders the buffer into the exact byte stream the chain's shift
// registers expect. Data for the last chip is emitted first: the bits sent
// first shift the furthest down the chain. Within a chip the highest channel
// is emitted first, each value MSB first, matching the datasheet fill order.
//
// The result is fully determined by the buffer contents; an empty chain
// serializes to an empty slice.
func (b *ChannelBuffer) Serialize() []byte {
	n := b.variant.Channels()
	out := make([]byte, 0, b.devices*b.variant.bytesPerDevice())
	for d := b.devices - 1; d >= 0; d-- {
		chip := b.values[d*n : (d+1)*n]
		switch b.variant {
		case TLC59711:
			out = appendControlWord(out, b.bc)
			out = append16(out, chip)
		default:
			out = append12(out, chip)
		}
	}
	return out
}

// append12 packs chip's channels highest first, two 12-bit values per three
// bytes: [hi:11..4][hi:3..0|lo:11..8][lo:7..0].
func append12(dst []byte, chip []uint16) []byte {
	for i := len(chip) - 2; i >= 0; i -= 2 {
		hi, lo := chip[i+1], chip[i]
		dst = append(dst, byte(hi>>4), byte(hi<<4)|byte(lo>>8), byte(lo))
	}
	return dst
}

// append16 emits chip's channels highest first as big-endian words.
func append16(dst []byte, chip []uint16) []byte {
	for i := len(chip) - 1; i >= 0; i-- {
		dst = append(dst, byte(chip[i]>>8), byte(chip[i]))
	}
	return dst
}

// TLC59711 control word fields. The write command is fixed; OUTTMG, TMGRST
// and DSPRPT are held at the values every stock board expects (rising-edge
// PWM timing, timing reset on, auto display repeat, not blanked, internal
// grayscale clock).
const (
	ctlWriteCmd = 0x25
	ctlFlags    = 0xC0 // TMGRST | DSPRPT in the second byte's top bits
)

// appendControlWord emits the 32-bit per-chip header: 6-bit write command,
// five mode flags, then 7-bit global brightness for blue, green and red.
func appendControlWord(dst []byte, bc [3]uint8) []byte {
	bcr, bcg, bcb := bc[0], bc[1], bc[2]
	return append(dst,
		ctlWriteCmd<<2|0x02, // OUTTMG=1, EXTGCK=0
		ctlFlags|bcb>>2,
		bcb<<6|bcg>>1,
		bcg<<7|bcr,
	)
}
