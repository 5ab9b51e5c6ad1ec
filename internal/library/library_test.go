package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashpursglove/traycalc/internal/models"
)

func TestLoadPresetsOnly(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Cables, len(models.DefaultCables()))
	assert.Len(t, c.Trays, len(models.DefaultTrays()))

	cable, ok := c.FindCable("Cu 3C 2.5mm² PVC")
	require.True(t, ok)
	assert.Equal(t, 11.0, cable.DiameterMM)

	_, ok = c.FindTray("no such tray")
	assert.False(t, ok)
}

func TestLoadMergesUserFile(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)

	// One override, one new cable, one new tray.
	assert.Len(t, c.Cables, len(models.DefaultCables())+1)
	assert.Len(t, c.Trays, len(models.DefaultTrays())+1)

	cable, ok := c.FindCable("CAT7 S/FTP")
	require.True(t, ok)
	assert.Equal(t, 0.072, cable.WeightKgM, "user file should override the preset weight")

	feeder, ok := c.FindCable("Site feeder 4C 240mm²")
	require.True(t, ok)
	assert.Equal(t, 60.0, feeder.DiameterMM)

	tray, ok := c.FindTray("Site ladder 500 x 120")
	require.True(t, ok)
	assert.Equal(t, 0.55, tray.MaxFillRatio)
}

func TestLoadRejectsInvalidCable(t *testing.T) {
	path := filepath.Join("testdata", "bad-cable.yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadRejectsInvalidTray(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad-tray.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overfull")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.yaml"))
	require.Error(t, err)
}
