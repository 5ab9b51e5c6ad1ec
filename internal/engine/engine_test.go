package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashpursglove/traycalc/internal/models"
)

func heavyLadder300() models.Tray {
	return models.Tray{
		Name:          "Ladder HDG heavy 300 x 100",
		WidthMM:       300,
		HeightMM:      100,
		MaxLoadKgM:    140,
		SelfWeightKgM: 6.0,
		MaxFillRatio:  0.6,
	}
}

func TestEvaluateKnownValues(t *testing.T) {
	entries := []models.CableEntry{
		{Cable: models.Cable{Name: "Cu 3C 2.5mm² PVC", DiameterMM: 11.0, WeightKgM: 0.30}, Quantity: 10},
	}

	s := Evaluate(entries, heavyLadder300())

	assert.InDelta(t, 3.0, s.TotalCableWeightKgM, 1e-9)
	assert.InDelta(t, 6.0, s.TraySelfWeightKgM, 1e-9)
	assert.InDelta(t, 9.0, s.TotalWeightKgM, 1e-9)
	assert.InDelta(t, 140.0, s.AllowableLoadKgM, 1e-9)
	assert.InDelta(t, 3.0/140.0*100.0, s.StructuralUtilisationPct, 1e-9)

	wantArea := 10 * math.Pi * 5.5 * 5.5
	assert.InDelta(t, wantArea, s.TotalCableAreaMM2, 1e-6)
	assert.InDelta(t, 27000.0, s.TrayUsableAreaMM2, 1e-9) // 300 * 100 * 0.9
	assert.InDelta(t, wantArea/27000.0*100.0, s.AreaFillPct, 1e-9)
	assert.InDelta(t, 60.0, s.MaxAreaFillPct, 1e-9)
	assert.Equal(t, 1, s.CableCount)
	assert.Equal(t, StatusOK, s.Classify())
}

func TestEvaluateSkipsInvalidEntries(t *testing.T) {
	entries := []models.CableEntry{
		{Cable: models.Cable{Name: "good", DiameterMM: 10, WeightKgM: 0.5}, Quantity: 2},
		{Cable: models.Cable{Name: "zero qty", DiameterMM: 10, WeightKgM: 0.5}, Quantity: 0},
		{Cable: models.Cable{Name: "bad diameter", DiameterMM: -1, WeightKgM: 0.5}, Quantity: 3},
		{Cable: models.Cable{Name: "no weight", DiameterMM: 10, WeightKgM: 0}, Quantity: 3},
	}

	s := Evaluate(entries, heavyLadder300())

	assert.Equal(t, 1, s.CableCount)
	assert.InDelta(t, 1.0, s.TotalCableWeightKgM, 1e-9)
}

func TestEvaluateEmptySchedule(t *testing.T) {
	s := Evaluate(nil, heavyLadder300())

	assert.Equal(t, 0, s.CableCount)
	assert.Equal(t, 0.0, s.TotalCableWeightKgM)
	assert.InDelta(t, 6.0, s.TotalWeightKgM, 1e-9)
	assert.Equal(t, StatusNoCables, s.Classify())
	assert.True(t, s.Classify().OK())
}

func TestEvaluateZeroCapacityTray(t *testing.T) {
	tray := models.Tray{Name: "undefined", MaxFillRatio: 0.6}
	entries := []models.CableEntry{
		{Cable: models.Cable{Name: "c", DiameterMM: 10, WeightKgM: 1.0}, Quantity: 5},
	}

	s := Evaluate(entries, tray)

	// No capacity information: utilisation and fill stay at zero rather
	// than dividing by zero.
	assert.Equal(t, 0.0, s.StructuralUtilisationPct)
	assert.Equal(t, 0.0, s.AreaFillPct)
	assert.False(t, s.OverloadedStructural())
}

func TestClassify(t *testing.T) {
	structOnly := models.Tray{Name: "weak", WidthMM: 600, HeightMM: 100, MaxLoadKgM: 2, SelfWeightKgM: 1, MaxFillRatio: 0.6}
	fillOnly := models.Tray{Name: "narrow", WidthMM: 100, HeightMM: 50, MaxLoadKgM: 500, SelfWeightKgM: 1, MaxFillRatio: 0.5}
	tiny := models.Tray{Name: "hopeless", WidthMM: 100, HeightMM: 50, MaxLoadKgM: 2, SelfWeightKgM: 1, MaxFillRatio: 0.5}

	heavyCable := []models.CableEntry{
		{Cable: models.Cable{Name: "big", DiameterMM: 40, WeightKgM: 5.0}, Quantity: 3},
	}

	tests := []struct {
		name string
		tray models.Tray
		want Status
	}{
		{"structural overload", structOnly, StatusOverloadedStructural},
		{"fill overload", fillOnly, StatusOverloadedFill},
		{"both limits exceeded", tiny, StatusOverloadedBoth},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Evaluate(heavyCable, tc.tray)
			assert.Equal(t, tc.want, s.Classify())
			assert.False(t, s.Classify().OK())
		})
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "No cables defined.", StatusNoCables.String())
	assert.Equal(t, "OK: within structural and fill limits", StatusOK.String())
	assert.Equal(t, "OVERLOADED: structural limit exceeded", StatusOverloadedStructural.String())
	assert.Equal(t, "WARNING: area fill above recommended limit", StatusOverloadedFill.String())
	assert.Equal(t, "OVERLOADED: structural + fill limits exceeded", StatusOverloadedBoth.String())
}

func TestSeverityThresholds(t *testing.T) {
	tray := models.Tray{Name: "t", WidthMM: 1000, HeightMM: 1000, MaxLoadKgM: 100, SelfWeightKgM: 1, MaxFillRatio: 0.6}

	entry := func(weight float64) []models.CableEntry {
		return []models.CableEntry{
			{Cable: models.Cable{Name: "c", DiameterMM: 10, WeightKgM: weight}, Quantity: 1},
		}
	}

	assert.Equal(t, SeverityOK, Evaluate(entry(50), tray).StructuralSeverity())
	assert.Equal(t, SeverityNear, Evaluate(entry(90), tray).StructuralSeverity())
	assert.Equal(t, SeverityOver, Evaluate(entry(120), tray).StructuralSeverity())
}

func TestFillSeverityThresholds(t *testing.T) {
	// Usable area 100 * 90 = 9000 mm², recommended limit 60%.
	tray := models.Tray{Name: "t", WidthMM: 100, HeightMM: 100, MaxLoadKgM: 1000, SelfWeightKgM: 1, MaxFillRatio: 0.6}

	withFill := func(areaPct float64) Stats {
		// One round cable whose area hits the requested fill percentage.
		area := areaPct / 100.0 * 9000.0
		d := 2 * math.Sqrt(area/math.Pi)
		return Evaluate([]models.CableEntry{
			{Cable: models.Cable{Name: "c", DiameterMM: d, WeightKgM: 0.1}, Quantity: 1},
		}, tray)
	}

	assert.Equal(t, SeverityOK, withFill(30).FillSeverity())
	assert.Equal(t, SeverityNear, withFill(55).FillSeverity())
	assert.Equal(t, SeverityOver, withFill(70).FillSeverity())
}
