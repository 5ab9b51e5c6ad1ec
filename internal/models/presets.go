package models

import "fmt"

// DefaultCables returns the built-in library of typical LV power,
// control, instrumentation, data, fibre and coax cables.
//
// Values are approximate, averaged from typical manufacturer data.
// Always verify against actual cable datasheets for final design.
func DefaultCables() []Cable {
	return []Cable{
		// LV single-core PVC 450/750 V (Cu)
		{Name: "Cu 1C 1.5mm² PVC", DiameterMM: 5.0, WeightKgM: 0.036},
		{Name: "Cu 1C 2.5mm² PVC", DiameterMM: 5.5, WeightKgM: 0.055},
		{Name: "Cu 1C 4mm² PVC", DiameterMM: 6.0, WeightKgM: 0.075},
		{Name: "Cu 1C 6mm² PVC", DiameterMM: 6.8, WeightKgM: 0.110},
		{Name: "Cu 1C 10mm² PVC", DiameterMM: 8.0, WeightKgM: 0.170},
		{Name: "Cu 1C 16mm² PVC", DiameterMM: 9.5, WeightKgM: 0.260},
		{Name: "Cu 1C 25mm² PVC", DiameterMM: 11.5, WeightKgM: 0.380},
		{Name: "Cu 1C 35mm² PVC", DiameterMM: 13.0, WeightKgM: 0.520},
		{Name: "Cu 1C 50mm² PVC", DiameterMM: 15.0, WeightKgM: 0.720},
		{Name: "Cu 1C 70mm² PVC", DiameterMM: 17.0, WeightKgM: 1.000},
		{Name: "Cu 1C 95mm² PVC", DiameterMM: 19.5, WeightKgM: 1.290},
		{Name: "Cu 1C 120mm² PVC", DiameterMM: 21.0, WeightKgM: 1.540},

		// LV multi-core PVC (typical building power) - 3C
		{Name: "Cu 3C 1.5mm² PVC", DiameterMM: 9.5, WeightKgM: 0.22},
		{Name: "Cu 3C 2.5mm² PVC", DiameterMM: 11.0, WeightKgM: 0.30},
		{Name: "Cu 3C 4mm² PVC", DiameterMM: 13.0, WeightKgM: 0.45},
		{Name: "Cu 3C 6mm² PVC", DiameterMM: 15.0, WeightKgM: 0.65},
		{Name: "Cu 3C 10mm² PVC", DiameterMM: 18.0, WeightKgM: 1.05},
		{Name: "Cu 3C 16mm² PVC", DiameterMM: 21.0, WeightKgM: 1.55},
		{Name: "Cu 3C 25mm² PVC", DiameterMM: 25.0, WeightKgM: 2.40},
		{Name: "Cu 3C 35mm² PVC", DiameterMM: 28.0, WeightKgM: 3.20},
		{Name: "Cu 3C 50mm² PVC", DiameterMM: 32.0, WeightKgM: 4.40},
		{Name: "Cu 3C 70mm² PVC", DiameterMM: 36.0, WeightKgM: 5.90},
		{Name: "Cu 3C 95mm² PVC", DiameterMM: 42.0, WeightKgM: 7.70},

		// LV multi-core PVC - 4C
		{Name: "Cu 4C 1.5mm² PVC", DiameterMM: 10.0, WeightKgM: 0.25},
		{Name: "Cu 4C 2.5mm² PVC", DiameterMM: 12.0, WeightKgM: 0.34},
		{Name: "Cu 4C 4mm² PVC", DiameterMM: 14.5, WeightKgM: 0.52},
		{Name: "Cu 4C 6mm² PVC", DiameterMM: 16.5, WeightKgM: 0.75},
		{Name: "Cu 4C 10mm² PVC", DiameterMM: 20.0, WeightKgM: 1.20},
		{Name: "Cu 4C 16mm² PVC", DiameterMM: 23.0, WeightKgM: 1.80},
		{Name: "Cu 4C 25mm² PVC", DiameterMM: 27.0, WeightKgM: 2.70},
		{Name: "Cu 4C 35mm² PVC", DiameterMM: 30.0, WeightKgM: 3.60},

		// LV multi-core PVC - 5C
		{Name: "Cu 5C 1.5mm² PVC", DiameterMM: 11.0, WeightKgM: 0.29},
		{Name: "Cu 5C 2.5mm² PVC", DiameterMM: 13.0, WeightKgM: 0.40},
		{Name: "Cu 5C 4mm² PVC", DiameterMM: 15.5, WeightKgM: 0.60},
		{Name: "Cu 5C 6mm² PVC", DiameterMM: 17.5, WeightKgM: 0.85},
		{Name: "Cu 5C 10mm² PVC", DiameterMM: 21.0, WeightKgM: 1.35},
		{Name: "Cu 5C 16mm² PVC", DiameterMM: 24.0, WeightKgM: 2.00},

		// Armoured LV power - 4C
		{Name: "Cu 4C 10mm² XLPE/SWA/PVC", DiameterMM: 24.0, WeightKgM: 1.85},
		{Name: "Cu 4C 16mm² XLPE/SWA/PVC", DiameterMM: 27.0, WeightKgM: 2.45},
		{Name: "Cu 4C 25mm² XLPE/SWA/PVC", DiameterMM: 31.0, WeightKgM: 3.35},
		{Name: "Cu 4C 35mm² XLPE/SWA/PVC", DiameterMM: 35.0, WeightKgM: 4.50},
		{Name: "Cu 4C 50mm² XLPE/SWA/PVC", DiameterMM: 38.0, WeightKgM: 5.60},
		{Name: "Cu 4C 70mm² XLPE/SWA/PVC", DiameterMM: 43.0, WeightKgM: 7.50},
		{Name: "Cu 4C 95mm² XLPE/SWA/PVC", DiameterMM: 48.0, WeightKgM: 9.60},
		{Name: "Cu 4C 120mm² XLPE/SWA/PVC", DiameterMM: 52.0, WeightKgM: 11.7},

		// Armoured LV power - 5C
		{Name: "Cu 5C 0.75mm² XLPE/SWA/PVC", DiameterMM: 17.0, WeightKgM: 1.55},
		{Name: "Cu 5C 1.0mm² XLPE/SWA/PVC", DiameterMM: 18.0, WeightKgM: 1.75},
		{Name: "Cu 5C 1.5mm² XLPE/SWA/PVC", DiameterMM: 19.5, WeightKgM: 2.05},
		{Name: "Cu 5C 2.5mm² XLPE/SWA/PVC", DiameterMM: 21.5, WeightKgM: 2.55},
		{Name: "Cu 5C 4mm² XLPE/SWA/PVC", DiameterMM: 26.0, WeightKgM: 2.90},
		{Name: "Cu 5C 6mm² XLPE/SWA/PVC", DiameterMM: 28.0, WeightKgM: 3.60},
		{Name: "Cu 5C 10mm² XLPE/SWA/PVC", DiameterMM: 32.0, WeightKgM: 4.80},
		{Name: "Cu 5C 16mm² XLPE/SWA/PVC", DiameterMM: 36.0, WeightKgM: 6.40},
		{Name: "Cu 5C 25mm² XLPE/SWA/PVC", DiameterMM: 41.0, WeightKgM: 8.60},

		// Control / I/O cables
		{Name: "Control 7C 1.5mm² PVC", DiameterMM: 13.5, WeightKgM: 0.33},
		{Name: "Control 12C 1.5mm² PVC", DiameterMM: 17.5, WeightKgM: 0.52},
		{Name: "Control 24C 1.5mm² PVC", DiameterMM: 23.0, WeightKgM: 0.95},
		{Name: "Control 7C 2.5mm² PVC", DiameterMM: 15.5, WeightKgM: 0.48},
		{Name: "Control 12C 2.5mm² PVC", DiameterMM: 20.0, WeightKgM: 0.78},

		// Instrumentation / twisted pair
		{Name: "Instr 2x2x0.75mm² overall screen", DiameterMM: 9.0, WeightKgM: 0.12},
		{Name: "Instr 4x2x0.75mm² overall screen", DiameterMM: 11.5, WeightKgM: 0.19},
		{Name: "Instr 8x2x0.75mm² overall screen", DiameterMM: 15.0, WeightKgM: 0.32},

		// Data cables - copper
		{Name: "CAT5e U/UTP", DiameterMM: 5.3, WeightKgM: 0.030},
		{Name: "CAT5e F/UTP", DiameterMM: 5.8, WeightKgM: 0.035},
		{Name: "CAT6 U/UTP (indoor)", DiameterMM: 6.1, WeightKgM: 0.040},
		{Name: "CAT6 F/UTP", DiameterMM: 6.5, WeightKgM: 0.045},
		{Name: "CAT6A F/UTP", DiameterMM: 7.6, WeightKgM: 0.055},
		{Name: "CAT7 S/FTP", DiameterMM: 8.2, WeightKgM: 0.065},

		// Fibre optics
		{Name: "Fibre 4C tight-buffer indoor", DiameterMM: 6.0, WeightKgM: 0.030},
		{Name: "Fibre 12C loose-tube indoor", DiameterMM: 8.0, WeightKgM: 0.045},
		{Name: "Fibre 24C loose-tube indoor", DiameterMM: 10.5, WeightKgM: 0.065},
		{Name: "Fibre 48C loose-tube indoor", DiameterMM: 13.0, WeightKgM: 0.090},

		// Coax
		{Name: "RG59/U coax", DiameterMM: 6.1, WeightKgM: 0.040},
		{Name: "RG6/U coax", DiameterMM: 6.9, WeightKgM: 0.055},
		{Name: "RG11/U coax", DiameterMM: 10.5, WeightKgM: 0.090},

		// Flexible power leads
		{Name: "H07RN-F 3G1.5mm²", DiameterMM: 11.3, WeightKgM: 0.20},
		{Name: "H07RN-F 3G2.5mm²", DiameterMM: 12.2, WeightKgM: 0.26},
		{Name: "H07RN-F 3G4mm²", DiameterMM: 13.5, WeightKgM: 0.36},
		{Name: "H07RN-F 5G2.5mm²", DiameterMM: 14.5, WeightKgM: 0.36},
	}
}

// traySize is one row of a preset tray family table.
type traySize struct {
	widthMM    float64
	maxLoadKgM float64
	selfKgM    float64
}

// trayFamily builds a family of trays sharing a name pattern, height and
// recommended fill ratio.
func trayFamily(pattern string, heightMM, fillRatio float64, sizes []traySize) []Tray {
	trays := make([]Tray, 0, len(sizes))
	for _, s := range sizes {
		trays = append(trays, Tray{
			Name:          fmt.Sprintf(pattern, int(s.widthMM)),
			WidthMM:       s.widthMM,
			HeightMM:      heightMM,
			MaxLoadKgM:    s.maxLoadKgM,
			SelfWeightKgM: s.selfKgM,
			MaxFillRatio:  fillRatio,
		})
	}
	return trays
}

// DefaultTrays returns the built-in library of typical tray, ladder and
// basket sizes.
//
// Width and height are internal usable dimensions. Loads are approximate
// uniformly distributed loads at typical support spacing (1.5-2.0 m) and
// self-weights are approximate. These are generic blended values for
// quick planning; for real design replace with the actual manufacturer
// load tables (NEMA, IEC 61537).
func DefaultTrays() []Tray {
	var trays []Tray

	// Heavy-duty cable ladders, 60% recommended fill for big power.
	trays = append(trays, trayFamily("Ladder HDG heavy %d x 100", 100, 0.6, []traySize{
		{150, 90.0, 4.5},
		{200, 110.0, 5.0},
		{300, 140.0, 6.0},
		{450, 170.0, 7.5},
		{600, 200.0, 9.0},
		{750, 220.0, 10.5},
		{900, 240.0, 12.0},
	})...)

	// Medium-duty ladders.
	trays = append(trays, trayFamily("Ladder HDG medium %d x 75", 75, 0.55, []traySize{
		{150, 60.0, 3.8},
		{200, 75.0, 4.2},
		{300, 100.0, 5.0},
		{450, 125.0, 6.0},
		{600, 150.0, 7.2},
		{750, 170.0, 8.5},
		{900, 190.0, 9.8},
	})...)

	// Light-duty ladders (shorter spans, LV/ELV).
	trays = append(trays, trayFamily("Ladder HDG light %d x 60", 60, 0.55, []traySize{
		{100, 40.0, 2.8},
		{150, 50.0, 3.2},
		{200, 60.0, 3.6},
		{300, 80.0, 4.2},
		{450, 100.0, 5.2},
		{600, 115.0, 6.0},
	})...)

	// Perforated trays (ventilated), lower structural capacity.
	trays = append(trays, trayFamily("Perforated tray 50H %d wide", 50, 0.5, []traySize{
		{100, 25.0, 2.2},
		{150, 30.0, 2.6},
		{200, 35.0, 3.0},
		{300, 45.0, 3.8},
		{450, 55.0, 4.6},
		{600, 65.0, 5.3},
	})...)

	// Shallow perforated (control / lighting).
	trays = append(trays, trayFamily("Perforated tray 35H %d wide", 35, 0.45, []traySize{
		{100, 20.0, 1.9},
		{150, 25.0, 2.2},
		{200, 30.0, 2.5},
		{300, 40.0, 3.1},
	})...)

	// Wire mesh / basket trays, typically data/IT.
	trays = append(trays, trayFamily("Wire mesh tray 50H %d wide", 50, 0.5, []traySize{
		{100, 15.0, 1.2},
		{150, 18.0, 1.4},
		{200, 20.0, 1.6},
		{300, 25.0, 2.0},
		{400, 30.0, 2.4},
	})...)

	// Low-profile basket for under-floor / ceiling (IT).
	trays = append(trays, trayFamily("Wire mesh tray 35H %d wide", 35, 0.45, []traySize{
		{100, 10.0, 1.0},
		{150, 12.0, 1.1},
		{200, 14.0, 1.2},
		{300, 18.0, 1.6},
	})...)

	// Solid-bottom trays (sensitive / EMC), lower fill to help with heat.
	trays = append(trays, trayFamily("Solid-bottom tray 60H %d wide", 60, 0.45, []traySize{
		{100, 30.0, 3.0},
		{150, 35.0, 3.5},
		{200, 40.0, 4.0},
		{300, 50.0, 5.0},
		{450, 60.0, 6.3},
		{600, 70.0, 7.5},
	})...)

	return trays
}
