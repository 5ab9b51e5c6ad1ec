package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCableAreaMM2(t *testing.T) {
	c := Cable{Name: "test", DiameterMM: 10.0, WeightKgM: 0.1}
	assert.InDelta(t, math.Pi*25.0, c.AreaMM2(), 1e-9)

	zero := Cable{Name: "zero"}
	assert.Equal(t, 0.0, zero.AreaMM2())
}

func TestCableEntryValid(t *testing.T) {
	good := CableEntry{Cable: Cable{Name: "c", DiameterMM: 5, WeightKgM: 0.05}, Quantity: 1}
	assert.True(t, good.Valid())

	assert.False(t, CableEntry{Cable: good.Cable, Quantity: 0}.Valid())
	assert.False(t, CableEntry{Cable: Cable{DiameterMM: -1, WeightKgM: 0.05}, Quantity: 1}.Valid())
	assert.False(t, CableEntry{Cable: Cable{DiameterMM: 5, WeightKgM: 0}, Quantity: 1}.Valid())
}

func TestDefaultCables(t *testing.T) {
	cables := DefaultCables()
	require.Len(t, cables, 79)

	seen := make(map[string]bool, len(cables))
	for _, c := range cables {
		assert.True(t, c.Valid(), "cable %q must have positive diameter and weight", c.Name)
		assert.False(t, seen[c.Name], "duplicate cable name %q", c.Name)
		seen[c.Name] = true
	}
}

func TestDefaultCablesSpotCheck(t *testing.T) {
	for _, c := range DefaultCables() {
		if c.Name == "Cu 3C 2.5mm² PVC" {
			assert.Equal(t, 11.0, c.DiameterMM)
			assert.Equal(t, 0.30, c.WeightKgM)
			return
		}
	}
	t.Fatal("Cu 3C 2.5mm² PVC missing from default library")
}

func TestDefaultTrays(t *testing.T) {
	trays := DefaultTrays()
	require.Len(t, trays, 45)

	seen := make(map[string]bool, len(trays))
	for _, tray := range trays {
		assert.True(t, tray.Valid(), "tray %q must be structurally meaningful", tray.Name)
		assert.False(t, seen[tray.Name], "duplicate tray name %q", tray.Name)
		seen[tray.Name] = true
	}
}

func TestDefaultTraysSpotCheck(t *testing.T) {
	for _, tray := range DefaultTrays() {
		if tray.Name == "Ladder HDG heavy 300 x 100" {
			assert.Equal(t, 300.0, tray.WidthMM)
			assert.Equal(t, 100.0, tray.HeightMM)
			assert.Equal(t, 140.0, tray.MaxLoadKgM)
			assert.Equal(t, 6.0, tray.SelfWeightKgM)
			assert.Equal(t, 0.6, tray.MaxFillRatio)
			return
		}
	}
	t.Fatal("Ladder HDG heavy 300 x 100 missing from default library")
}
