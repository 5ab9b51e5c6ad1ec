package library

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ashpursglove/traycalc/internal/cmd/setup"
	"github.com/ashpursglove/traycalc/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	catalogue, err := setup.Catalogue()
	if err != nil {
		log.Fatal("failed to load cable/tray library", zap.Error(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch args[0] {
	case "cables":
		fmt.Fprintln(w, "NAME\tDIAMETER (mm)\tWEIGHT (kg/m)\tAREA (mm²)")
		for _, c := range catalogue.Cables {
			fmt.Fprintf(w, "%s\t%.1f\t%.3f\t%.0f\n", c.Name, c.DiameterMM, c.WeightKgM, c.AreaMM2())
		}
	case "trays":
		fmt.Fprintln(w, "NAME\tWIDTH (mm)\tHEIGHT (mm)\tMAX LOAD (kg/m)\tSELF WEIGHT (kg/m)\tMAX FILL")
		for _, t := range catalogue.Trays {
			fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.1f\t%.1f\t%.2f\n",
				t.Name, t.WidthMM, t.HeightMM, t.MaxLoadKgM, t.SelfWeightKgM, t.MaxFillRatio)
		}
	}
}
