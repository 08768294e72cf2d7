package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SPI     string `yaml:"spi"`     // spireg port name, "" = first available
	Lat     string `yaml:"lat"`     // gpioreg pin name, e.g. GPIO23
	Variant string `yaml:"variant"` // "tlc5947" | "tlc59711"
	Devices int    `yaml:"devices"` // chips in the chain

	FPS          int   `yaml:"fps"`
	Brightness   uint8 `yaml:"brightness"` // 0..127, tlc59711 only
	LatchPulseUs int   `yaml:"latch_pulse_us,omitempty"`
}

func Default() *Config {
	return &Config{
		Lat:        "GPIO23",
		Variant:    "tlc5947",
		Devices:    1,
		FPS:        30,
		Brightness: 127,
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
