package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashpursglove/traycalc/internal/models"
)

func TestLoadWithCommentsAndInvalidRows(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "site4.json"))
	require.NoError(t, err)

	// Invalid rows (negative diameter, zero quantity) are dropped; the
	// nameless-but-valid row gets the fallback name.
	require.Len(t, p.Entries, 2)
	assert.Equal(t, "Cu 3C 2.5mm² PVC", p.Entries[0].Cable.Name)
	assert.Equal(t, 10, p.Entries[0].Quantity)
	assert.Equal(t, "Cable", p.Entries[1].Cable.Name)
	assert.Equal(t, 4, p.Entries[1].Quantity)

	assert.Equal(t, "Ladder HDG heavy 300 x 100", p.Tray.Name)
	assert.Equal(t, 140.0, p.Tray.MaxLoadKgM)
}

func TestLoadSparseTrayFallsBackToDefaults(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "sparse.json"))
	require.NoError(t, err)

	want := models.DefaultTray()
	assert.Equal(t, "Riser tray", p.Tray.Name)
	assert.Equal(t, want.WidthMM, p.Tray.WidthMM)
	assert.Equal(t, want.MaxLoadKgM, p.Tray.MaxLoadKgM)
	assert.Equal(t, want.MaxFillRatio, p.Tray.MaxFillRatio)
	assert.Empty(t, p.Entries)
}

func TestLoadUnsupportedVersion(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "future.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version 99")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	p := New()
	p.Tray.Name = "Roundtrip tray"
	p.Entries = []models.CableEntry{
		{Cable: models.Cable{Name: "CAT6 U/UTP (indoor)", DiameterMM: 6.1, WeightKgM: 0.040}, Quantity: 24},
		{Cable: models.Cable{Name: "invalid", DiameterMM: 0, WeightKgM: 0.1}, Quantity: 1},
	}

	// No extension: ".json" gets appended.
	path, err := p.Save(filepath.Join(t.TempDir(), "myproject"))
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Roundtrip tray", loaded.Tray.Name)
	require.Len(t, loaded.Entries, 1, "the invalid entry should not survive the round trip")
	assert.Equal(t, p.Entries[0], loaded.Entries[0])
	assert.Equal(t, p.Tray, loaded.Tray)
}

func TestSaveWritesVersionedDocument(t *testing.T) {
	p := New()
	p.Entries = []models.CableEntry{
		{Cable: models.Cable{Name: "c", DiameterMM: 10, WeightKgM: 0.2}, Quantity: 2},
	}

	path, err := p.Save(filepath.Join(t.TempDir(), "doc.json"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)
	assert.Contains(t, string(data), `"weight_kg_per_m": 0.2`)
}
