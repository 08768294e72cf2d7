package show

import (
	"image"
	"image/color"
	"math"
	"time"
)

// Wheel maps h in [0, 1) onto the color wheel.
func Wheel(h float64) color.NRGBA {
	h *= 6
	switch {
	case h < 1.:
		return color.NRGBA{R: 255, G: byte(255 * h), A: 255}
	case h < 2.:
		return color.NRGBA{R: byte(255 * (2 - h)), G: 255, A: 255}
	case h < 3.:
		return color.NRGBA{G: 255, B: byte(255 * (h - 2)), A: 255}
	case h < 4.:
		return color.NRGBA{G: byte(255 * (4 - h)), B: 255, A: 255}
	case h < 5.:
		return color.NRGBA{R: byte(255 * (h - 4)), B: 255, A: 255}
	default:
		return color.NRGBA{R: 255, B: byte(255 * (6 - h)), A: 255}
	}
}

// Fade returns a FrameFunc that rotates the color wheel across all groups,
// one full revolution every period.
func Fade(period time.Duration) FrameFunc {
	if period <= 0 {
		period = 6 * time.Second
	}
	return func(elapsed time.Duration, bounds image.Rectangle) image.Image {
		img := image.NewNRGBA(bounds)
		n := bounds.Dx()
		for x := 0; x < n; x++ {
			h := elapsed.Seconds()/period.Seconds() + float64(x)/float64(n)
			img.SetNRGBA(x, 0, Wheel(math.Mod(h, 1)))
		}
		return img
	}
}
