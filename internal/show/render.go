package show

import (
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	tlc59xx "github.com/coreman2200/funtimes-tlc59xx"
	"github.com/coreman2200/funtimes-tlc59xx/internal/config"
)

// Renderer pushes frames to the chain, one pixel per RGB group. When no SPI
// port is available it falls back to drawing at the console so the show can
// run on a development machine.
type Renderer struct {
	drawer display.Drawer
	Spi    bool
}

// InitRenderer opens the SPI port and latch pin named in cfg and builds the
// chain device, or a console fallback when the port cannot be opened.
func InitRenderer(cfg *config.Config, log zerolog.Logger) (*Renderer, error) {
	rr := &Renderer{}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	variant, err := tlc59xx.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	groups := cfg.Devices * variant.Channels() / 3

	port, err := spireg.Open(cfg.SPI)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port, rendering at the console")
		rr.drawer = screen.New(groups)
		return rr, nil
	}

	lat := gpioreg.ByName(cfg.Lat)
	if lat == nil {
		port.Close()
		return nil, fmt.Errorf("show: no such pin %q", cfg.Lat)
	}
	dev, err := tlc59xx.NewSPI(port, lat, &tlc59xx.Opts{
		Variant:    variant,
		NumDevices: cfg.Devices,
		LatchPulse: time.Duration(cfg.LatchPulseUs) * time.Microsecond,
	})
	if err != nil {
		port.Close()
		return nil, err
	}
	if err := dev.SetBrightness(cfg.Brightness, cfg.Brightness, cfg.Brightness); err != nil {
		return nil, err
	}
	rr.drawer = dev
	rr.Spi = true
	return rr, nil
}

// Bounds is the frame size expected by Render.
func (r *Renderer) Bounds() image.Rectangle {
	return r.drawer.Bounds()
}

// Render pushes one frame.
func (r *Renderer) Render(src image.Image) error {
	return r.drawer.Draw(r.drawer.Bounds(), src, image.Point{})
}

// Clear blanks the output.
func (r *Renderer) Clear() error {
	return r.drawer.Halt()
}
