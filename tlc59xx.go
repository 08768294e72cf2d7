// Package tlc59xx drives chains of TI constant-current LED PWM chips over
// SPI plus a latch pin.
//
// Two chip families are supported: the TLC5947 (24 channels of 12-bit
// grayscale) and the TLC59711 (12 channels of 16-bit grayscale). Chips are
// daisy-chained through their shift registers, so one Dev addresses any
// number of devices as a flat channel array.
//
// Channel setters only touch the in-memory buffer; Write pushes the whole
// frame in one SPI transfer and pulses the latch so the chips apply it
// atomically.
//
// # Datasheets
//
// https://www.ti.com/lit/ds/symlink/tlc5947.pdf
//
// https://www.ti.com/lit/ds/symlink/tlc59711.pdf
package tlc59xx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts holds the chain configuration.
type Opts struct {
	// Variant selects the chip family. Zero value is TLC5947.
	Variant Variant
	// NumDevices is the number of chained chips. 0 is accepted and yields a
	// device whose writes carry no grayscale data but still pulse the latch.
	NumDevices int
	// Freq overrides the SPI clock. 0 uses a datasheet-safe default for the
	// variant.
	Freq physic.Frequency
	// LatchPulse is an extra hold between driving the latch high and low.
	// The chips need only tens of nanoseconds, which a GPIO write already
	// exceeds, so 0 is fine for a directly wired latch.
	LatchPulse time.Duration
}

// DefaultOpts is a single TLC5947.
var DefaultOpts = Opts{Variant: TLC5947, NumDevices: 1}

// Dev is an open handle to a chain of chips. It owns its channel buffer and
// is the sole driver of the latch pin. It is not safe for concurrent use.
type Dev struct {
	c        spi.Conn
	lat      gpio.PinOut
	buf      *ChannelBuffer
	pulse    time.Duration
	released bool
}

// NewSPI returns a Dev talking to a chain on the given SPI port.
//
// lat is the latch line, the chain's LAT pin; it is driven low immediately.
// The port is connected in Mode0 at 8 bits per word.
func NewSPI(p spi.Port, lat gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if lat == nil {
		return nil, errors.New("tlc59xx: a latch pin is required")
	}
	buf, err := NewChannelBuffer(opts.Variant, opts.NumDevices)
	if err != nil {
		return nil, err
	}
	if err := lat.Out(gpio.Low); err != nil {
		return nil, err
	}
	f := opts.Freq
	if f == 0 {
		f = opts.Variant.defaultFreq()
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &Dev{c: c, lat: lat, buf: buf, pulse: opts.LatchPulse}, nil
}

func (d *Dev) String() string {
	if d.released {
		return "tlc59xx.Dev{released}"
	}
	return fmt.Sprintf("tlc59xx.Dev{%s, %s, %s x%d}", d.c, d.lat, d.buf.variant, d.buf.devices)
}

// Buffer exposes the channel buffer for bulk manipulation. The buffer stays
// owned by the device; callers must not retain it past Release.
func (d *Dev) Buffer() *ChannelBuffer {
	return d.buf
}

// SetChannel stores a grayscale value for one channel. No hardware effect
// until Write.
func (d *Dev) SetChannel(ch int, v uint16) error {
	if d.released {
		return ErrReleased
	}
	return d.buf.SetChannel(ch, v)
}

// SetRGB stores a grayscale triplet for a group of three consecutive
// channels. No hardware effect until Write.
func (d *Dev) SetRGB(group int, r, g, b uint16) error {
	if d.released {
		return ErrReleased
	}
	return d.buf.SetRGB(group, r, g, b)
}

// SetBrightness stores the TLC59711 global brightness fields. No hardware
// effect until Write.
func (d *Dev) SetBrightness(r, g, b uint8) error {
	if d.released {
		return ErrReleased
	}
	d.buf.SetBrightness(r, g, b)
	return nil
}

// Write pushes the buffer to the chain and latches it.
//
// The frame goes out as a single transfer. Only once the transfer has
// succeeded is the latch pulsed, so a failed transfer leaves the chips
// displaying the previous frame. The buffer is never mutated: after a
// TransferError or LatchError the same frame can be retried by calling
// Write again.
func (d *Dev) Write() error {
	if d.released {
		return ErrReleased
	}
	if err := d.c.Tx(d.buf.Serialize(), nil); err != nil {
		return &TransferError{Err: err}
	}
	if err := d.lat.Out(gpio.High); err != nil {
		return &LatchError{Err: err}
	}
	if d.pulse > 0 {
		time.Sleep(d.pulse)
	}
	if err := d.lat.Out(gpio.Low); err != nil {
		return &LatchError{Err: err}
	}
	return nil
}

// Halt implements conn.Resource. It turns every channel off and writes the
// frame out.
func (d *Dev) Halt() error {
	if d.released {
		return ErrReleased
	}
	d.buf.Reset()
	return d.Write()
}

// Release hands the SPI connection and the latch pin back to the caller and
// consumes the device: every later operation returns ErrReleased. Use it
// when the bus or pin outlives this driver.
func (d *Dev) Release() (spi.Conn, gpio.PinOut, error) {
	if d.released {
		return nil, nil, ErrReleased
	}
	d.released = true
	c, lat := d.c, d.lat
	d.c = nil
	d.lat = nil
	return c, lat, nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer: one pixel per RGB group, a single row.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.buf.Len()/rgbStride, 1)
}

// Draw implements display.Drawer. Each pixel maps to one RGB group, 8-bit
// components expanded to the variant's full grayscale range, then the frame
// is written and latched.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.released {
		return ErrReleased
	}
	r = r.Intersect(d.Bounds())
	for x := 0; x < r.Dx(); x++ {
		c := color.NRGBAModel.Convert(src.At(sp.X+x, sp.Y)).(color.NRGBA)
		v := d.buf.variant
		if err := d.buf.SetRGB(r.Min.X+x, v.expand8(c.R), v.expand8(c.G), v.expand8(c.B)); err != nil {
			return err
		}
	}
	return d.Write()
}

var _ conn.Resource = &Dev{}
var _ display.Drawer = &Dev{}
