// tlc-fade runs a color wheel fade across every RGB group of a TLC5947 or
// TLC59711 chain. Without SPI hardware it renders the fade at the console.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-tlc59xx/internal/config"
	"github.com/coreman2200/funtimes-tlc59xx/internal/show"
)

func main() {
	var (
		spiPort    = flag.String("spi", "", "SPI port name (empty = first available)")
		latPin     = flag.String("lat", "GPIO23", "latch pin name")
		variant    = flag.String("variant", "tlc5947", "chip family: tlc5947 | tlc59711")
		devices    = flag.Int("devices", 1, "chips in the chain")
		fps        = flag.Int("fps", show.DfltFPS, "frames per second")
		brightness = flag.Int("brightness", 127, "global brightness 0..127 (tlc59711 only)")
		period     = flag.Duration("period", 6*time.Second, "time per color wheel revolution")
		configPath = flag.String("config", "", "path to config.yaml; overrides the flags")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := &config.Config{
		SPI:        *spiPort,
		Lat:        *latPin,
		Variant:    *variant,
		Devices:    *devices,
		FPS:        *fps,
		Brightness: uint8(*brightness),
	}
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		} else {
			cfg = c
		}
	}

	r, err := show.InitRenderer(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("renderer init failed")
	}
	if r.Spi {
		log.Info().Str("variant", cfg.Variant).Int("devices", cfg.Devices).Msg("driving chain")
	}

	l := show.NewLooper(r, show.Fade(*period), cfg.FPS, log.Logger)
	l.Start()

	if err := r.Clear(); err != nil {
		log.Error().Err(err).Msg("clear failed")
	}
}
