package models

import "math"

// Cable represents a cable type.
//
// Diameter is the approximate outer diameter in mm, Weight the cable
// weight per metre in kg/m.
type Cable struct {
	Name       string  `json:"name" yaml:"name"`
	DiameterMM float64 `json:"diameter_mm" yaml:"diameter_mm"`
	WeightKgM  float64 `json:"weight_kg_per_m" yaml:"weight_kg_per_m"`
}

// AreaMM2 returns the approximate cross-sectional area of the cable in
// mm², treating it as round: A = π * (d/2)².
func (c Cable) AreaMM2() float64 {
	radius := c.DiameterMM / 2.0
	return math.Pi * radius * radius
}

// Valid reports whether the cable has usable geometry and weight.
func (c Cable) Valid() bool {
	return c.DiameterMM > 0 && c.WeightKgM > 0
}

// Tray represents a cable tray type and its structural capacity.
//
// Width and Height are the internal usable dimensions in mm. MaxLoadKgM
// is the maximum allowable uniformly distributed load at typical support
// spacing. MaxFillRatio is the recommended area fill limit (0-1).
type Tray struct {
	Name          string  `json:"name" yaml:"name"`
	WidthMM       float64 `json:"width_mm" yaml:"width_mm"`
	HeightMM      float64 `json:"height_mm" yaml:"height_mm"`
	MaxLoadKgM    float64 `json:"max_load_kg_per_m" yaml:"max_load_kg_per_m"`
	SelfWeightKgM float64 `json:"self_weight_kg_per_m" yaml:"self_weight_kg_per_m"`
	MaxFillRatio  float64 `json:"max_fill_ratio" yaml:"max_fill_ratio"`
}

// Valid reports whether the tray definition is structurally meaningful.
func (t Tray) Valid() bool {
	return t.WidthMM > 0 && t.HeightMM > 0 && t.MaxLoadKgM > 0 &&
		t.SelfWeightKgM > 0 && t.MaxFillRatio > 0 && t.MaxFillRatio <= 1
}

// CableEntry is one row of the cable schedule: a cable type and how many
// runs of it lie in the tray.
type CableEntry struct {
	Cable    Cable `json:"cable" yaml:"cable"`
	Quantity int   `json:"quantity" yaml:"quantity"`
}

// Valid reports whether the entry contributes to the calculation.
// Entries with non-positive quantity, diameter or weight are skipped.
func (e CableEntry) Valid() bool {
	return e.Quantity > 0 && e.Cable.Valid()
}

// DefaultTray returns the baseline custom tray used when a project file
// omits tray fields: a generic 300 mm heavy ladder.
func DefaultTray() Tray {
	return Tray{
		Name:          "Custom tray",
		WidthMM:       300,
		HeightMM:      100,
		MaxLoadKgM:    140,
		SelfWeightKgM: 6.0,
		MaxFillRatio:  0.6,
	}
}
