// Package engine implements the cable tray loading and fill calculation.
//
// Given a schedule of cable entries and a tray definition it computes the
// weight per metre carried by the tray, the structural utilisation
// against the tray's allowable load, and the cross-sectional area fill
// against the recommended fill ratio.
package engine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ashpursglove/traycalc/internal/models"
)

// EffectiveFillHeight is the fraction of the tray side height treated as
// usable fill height. Cables never stack perfectly to the rim, so only
// 90% of the side height counts towards the usable area.
const EffectiveFillHeight = 0.9

// Stats holds the computed loading and fill metrics for one tray.
type Stats struct {
	// Weights, all in kg/m.
	TotalCableWeightKgM float64
	TraySelfWeightKgM   float64
	TotalWeightKgM      float64
	AllowableLoadKgM    float64

	// StructuralUtilisationPct is the cable weight as a percentage of
	// the tray's allowable load. Tray self-weight is excluded from the
	// numerator: manufacturer load tables already account for it.
	StructuralUtilisationPct float64

	// Areas in mm² and the resulting fill percentages.
	TotalCableAreaMM2 float64
	TrayUsableAreaMM2 float64
	AreaFillPct       float64
	MaxAreaFillPct    float64

	// CableCount is the number of schedule entries that contributed to
	// the calculation (invalid rows are skipped).
	CableCount int
}

// Evaluate computes loading and fill statistics for the given schedule
// and tray. Entries with non-positive quantity, diameter or weight are
// ignored rather than rejected, matching how a part-filled schedule is
// treated while it is being edited.
func Evaluate(entries []models.CableEntry, tray models.Tray) Stats {
	weights := make([]float64, 0, len(entries))
	areas := make([]float64, 0, len(entries))
	count := 0

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		qty := float64(e.Quantity)
		weights = append(weights, e.Cable.WeightKgM*qty)
		areas = append(areas, e.Cable.AreaMM2()*qty)
		count++
	}

	s := Stats{
		TotalCableWeightKgM: floats.Sum(weights),
		TraySelfWeightKgM:   tray.SelfWeightKgM,
		AllowableLoadKgM:    tray.MaxLoadKgM,
		TotalCableAreaMM2:   floats.Sum(areas),
		MaxAreaFillPct:      tray.MaxFillRatio * 100.0,
		CableCount:          count,
	}
	s.TotalWeightKgM = s.TraySelfWeightKgM + s.TotalCableWeightKgM

	if s.AllowableLoadKgM > 0 {
		s.StructuralUtilisationPct = s.TotalCableWeightKgM / s.AllowableLoadKgM * 100.0
	}

	usableHeight := tray.HeightMM * EffectiveFillHeight
	s.TrayUsableAreaMM2 = tray.WidthMM * usableHeight
	if s.TrayUsableAreaMM2 > 0 {
		s.AreaFillPct = s.TotalCableAreaMM2 / s.TrayUsableAreaMM2 * 100.0
	}

	return s
}

// OverloadedStructural reports whether the cable weight exceeds the
// tray's allowable load.
func (s Stats) OverloadedStructural() bool {
	return s.AllowableLoadKgM > 0 && s.TotalCableWeightKgM > s.AllowableLoadKgM
}

// OverloadedFill reports whether the area fill exceeds the recommended
// maximum fill.
func (s Stats) OverloadedFill() bool {
	return s.AreaFillPct > s.MaxAreaFillPct
}

// Status is the overall verdict for a tray evaluation.
type Status int

const (
	StatusNoCables Status = iota
	StatusOK
	StatusOverloadedStructural
	StatusOverloadedFill
	StatusOverloadedBoth
)

func (s Status) String() string {
	switch s {
	case StatusNoCables:
		return "No cables defined."
	case StatusOK:
		return "OK: within structural and fill limits"
	case StatusOverloadedStructural:
		return "OVERLOADED: structural limit exceeded"
	case StatusOverloadedFill:
		return "WARNING: area fill above recommended limit"
	case StatusOverloadedBoth:
		return "OVERLOADED: structural + fill limits exceeded"
	}
	return "unknown"
}

// OK reports whether the status describes a tray within all limits.
func (s Status) OK() bool {
	return s == StatusOK || s == StatusNoCables
}

// Classify derives the overall status from the computed stats.
func (s Stats) Classify() Status {
	structural := s.OverloadedStructural()
	fill := s.OverloadedFill()

	switch {
	case s.CableCount == 0:
		return StatusNoCables
	case structural && fill:
		return StatusOverloadedBoth
	case structural:
		return StatusOverloadedStructural
	case fill:
		return StatusOverloadedFill
	}
	return StatusOK
}

// Severity grades a single metric for display purposes.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityNear
	SeverityOver
)

// StructuralSeverity grades the structural utilisation: comfortable
// below 80%, neutral up to the allowable load, over beyond it.
func (s Stats) StructuralSeverity() Severity {
	switch {
	case s.OverloadedStructural():
		return SeverityOver
	case s.StructuralUtilisationPct < 80.0:
		return SeverityOK
	}
	return SeverityNear
}

// FillSeverity grades the area fill: comfortable below 80% of the
// recommended limit, neutral up to the limit, over beyond it.
func (s Stats) FillSeverity() Severity {
	switch {
	case s.OverloadedFill():
		return SeverityOver
	case s.AreaFillPct < 0.8*s.MaxAreaFillPct:
		return SeverityOK
	}
	return SeverityNear
}
