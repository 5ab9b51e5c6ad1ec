package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashpursglove/traycalc/internal/engine"
	"github.com/ashpursglove/traycalc/internal/models"
)

func testInput() Input {
	tray := models.Tray{
		Name:          "Ladder HDG heavy 300 x 100",
		WidthMM:       300,
		HeightMM:      100,
		MaxLoadKgM:    140,
		SelfWeightKgM: 6.0,
		MaxFillRatio:  0.6,
	}
	entries := []models.CableEntry{
		{Cable: models.Cable{Name: "Cu 3C 2.5mm² PVC", DiameterMM: 11.0, WeightKgM: 0.30}, Quantity: 10},
		{Cable: models.Cable{Name: "CAT6 U/UTP (indoor)", DiameterMM: 6.1, WeightKgM: 0.040}, Quantity: 24},
	}
	return Input{
		Tray:        tray,
		Entries:     entries,
		Stats:       engine.Evaluate(entries, tray),
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func emptyInput() Input {
	tray := models.DefaultTray()
	return Input{Tray: tray, Stats: engine.Evaluate(nil, tray), GeneratedAt: time.Now()}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testInput()))

	out := buf.String()
	assert.Contains(t, out, "Cable Tray Calculator CSV Report")
	assert.Contains(t, out, "Generated at,2026-03-14 09:30:00")
	assert.Contains(t, out, "Tray name,Ladder HDG heavy 300 x 100")
	assert.Contains(t, out, "Maximum allowable load (kg/m),140.0")
	assert.Contains(t, out, "Cable weight (kg/m),3.960")
	assert.Contains(t, out, `Tray usable area (mm2),"27,000"`)
	assert.Contains(t, out, "Overall status,OK: within structural and fill limits")

	// Cable rows carry per-row totals.
	assert.Contains(t, out, "Cu 3C 2.5mm² PVC,11.0,0.300,10,3.000,950")
	assert.Contains(t, out, "CAT6 U/UTP (indoor),6.1,0.040,24,0.960,701")
}

func TestWriteCSVOverloadStatus(t *testing.T) {
	in := testInput()
	in.Tray.MaxLoadKgM = 1.0
	in.Stats = engine.Evaluate(in.Entries, in.Tray)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))
	assert.Contains(t, buf.String(), "OVERLOADED: structural limit exceeded")
}

func TestWriteCSVRefusesEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, emptyInput())
	assert.ErrorIs(t, err, ErrNoCables)
	assert.Zero(t, buf.Len())
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testInput()))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "output should be a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestWritePDFRefusesEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, emptyInput())
	assert.ErrorIs(t, err, ErrNoCables)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testInput()))

	out := buf.String()
	assert.Contains(t, out, "Tray:")
	assert.Contains(t, out, "Cable weight:")
	assert.Contains(t, out, "3.960 kg/m")
	assert.Contains(t, out, "OK: within structural and fill limits")
}

func TestWriteTextAcceptsEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, emptyInput()))
	assert.Contains(t, buf.String(), "No cables defined.")
}
