package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the Excel-friendly CSV report: a header block with the
// tray configuration, a summary block with the key calculations, and the
// cable schedule table.
func WriteCSV(w io.Writer, in Input) error {
	if err := in.validate(); err != nil {
		return err
	}

	s := in.Stats
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Cable Tray Calculator CSV Report"},
		{"Generated at", in.timestamp()},
		{},
		{"Tray configuration"},
		{"Tray name", in.Tray.Name},
		{"Width (mm)", fmt.Sprintf("%.1f", in.Tray.WidthMM)},
		{"Side height (mm)", fmt.Sprintf("%.1f", in.Tray.HeightMM)},
		{"Tray self weight (kg/m)", fmt.Sprintf("%.3f", in.Tray.SelfWeightKgM)},
		{"Maximum allowable load (kg/m)", fmt.Sprintf("%.1f", in.Tray.MaxLoadKgM)},
		{"Maximum fill ratio", fmt.Sprintf("%.2f (recommended %.1f %% area fill)", in.Tray.MaxFillRatio, s.MaxAreaFillPct)},
		{},
		{"Summary"},
		{"Cable weight (kg/m)", fmt.Sprintf("%.3f", s.TotalCableWeightKgM)},
		{"Tray self weight (kg/m)", fmt.Sprintf("%.3f", s.TraySelfWeightKgM)},
		{"Total weight (kg/m)", fmt.Sprintf("%.3f", s.TotalWeightKgM)},
		{"Allowable load (kg/m)", fmt.Sprintf("%.1f", s.AllowableLoadKgM)},
		{"Structural utilisation (%)", fmt.Sprintf("%.1f", s.StructuralUtilisationPct)},
		{"Total cable area (mm2)", formatArea(s.TotalCableAreaMM2)},
		{"Tray usable area (mm2)", formatArea(s.TrayUsableAreaMM2)},
		{"Area fill (%)", fmt.Sprintf("%.1f", s.AreaFillPct)},
		{"Recommended max area fill (%)", fmt.Sprintf("%.1f", s.MaxAreaFillPct)},
		{"Overall status", s.Classify().String()},
		{},
		{"Cables in tray"},
		{"Cable name", "Diameter (mm)", "Weight (kg/m)", "Quantity", "Total weight (kg/m)", "Total area (mm2)"},
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}

	for _, entry := range in.Entries {
		if !entry.Valid() {
			continue
		}
		qty := float64(entry.Quantity)
		err := cw.Write([]string{
			entry.Cable.Name,
			fmt.Sprintf("%.1f", entry.Cable.DiameterMM),
			fmt.Sprintf("%.3f", entry.Cable.WeightKgM),
			fmt.Sprintf("%d", entry.Quantity),
			fmt.Sprintf("%.3f", entry.Cable.WeightKgM*qty),
			formatArea(entry.Cable.AreaMM2() * qty),
		})
		if err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
