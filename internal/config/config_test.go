package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-tlc59xx/internal/config"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(path, &config.Config{
		Lat:     "GPIO24",
		Variant: "tlc59711",
		Devices: 4,
		FPS:     60,
	}))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GPIO24", c.Lat)
	assert.Equal(t, "tlc59711", c.Variant)
	assert.Equal(t, 4, c.Devices)
	assert.Equal(t, 60, c.FPS)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultIsUsable(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 1, c.Devices)
	assert.NotZero(t, c.FPS)
	assert.NotEmpty(t, c.Lat)
}
