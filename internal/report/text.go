package report

import (
	"fmt"
	"io"
)

// WriteText prints the evaluation as a plain terminal summary. Unlike
// the CSV/PDF exporters it accepts an empty schedule, since it backs the
// non-interactive status output.
func WriteText(w io.Writer, in Input) error {
	s := in.Stats

	rows := []struct {
		label string
		value string
	}{
		{"Tray", in.Tray.Name},
		{"Cable weight", fmt.Sprintf("%.3f kg/m", s.TotalCableWeightKgM)},
		{"Tray self-weight", fmt.Sprintf("%.3f kg/m", s.TraySelfWeightKgM)},
		{"Total weight", fmt.Sprintf("%.3f kg/m", s.TotalWeightKgM)},
		{"Allowable load", fmt.Sprintf("%.1f kg/m", s.AllowableLoadKgM)},
		{"Structural utilisation", fmt.Sprintf("%.1f %%", s.StructuralUtilisationPct)},
		{"Total cable area", formatArea(s.TotalCableAreaMM2) + " mm²"},
		{"Tray usable area", formatArea(s.TrayUsableAreaMM2) + " mm²"},
		{"Area fill", fmt.Sprintf("%.1f %%", s.AreaFillPct)},
		{"Recommended max fill", fmt.Sprintf("%.1f %%", s.MaxAreaFillPct)},
		{"Status", s.Classify().String()},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-24s %s\n", row.label+":", row.value); err != nil {
			return err
		}
	}
	return nil
}
