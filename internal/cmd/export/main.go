package export

import (
	"fmt"
	"os"

	"github.com/ashpursglove/traycalc/internal/cmd/setup"
	"github.com/ashpursglove/traycalc/internal/report"
	"github.com/ashpursglove/traycalc/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	format := args[0]

	specs, _ := cmd.Flags().GetStringSlice("cable")
	if viper.GetString("project") == "" && len(specs) == 0 {
		log.Fatal("export needs cables to report on: pass --project and/or --cable")
	}

	proj, _, err := setup.Project()
	if err != nil {
		log.Fatal("failed to load project", zap.Error(err))
	}

	if len(specs) > 0 {
		catalogue, err := setup.Catalogue()
		if err != nil {
			log.Fatal("failed to load cable/tray library", zap.Error(err))
		}
		extra, err := setup.AdhocEntries(catalogue, specs)
		if err != nil {
			log.Fatal("invalid --cable flag", zap.Error(err))
		}
		proj.Entries = append(proj.Entries, extra...)
	}

	output := viper.GetString("output")
	if output == "" {
		output = "tray_report." + format
	}

	in := report.NewInput(proj.Entries, proj.Tray)

	f, err := os.Create(output)
	if err != nil {
		log.Fatal("failed to create output file", zap.Error(err))
	}
	defer f.Close()

	switch format {
	case "csv":
		err = report.WriteCSV(f, in)
	case "pdf":
		err = report.WritePDF(f, in)
	}
	if err != nil {
		os.Remove(output)
		log.Fatal("failed to write report", zap.String("format", format), zap.Error(err))
	}

	fmt.Printf("Report written to %s\n", output)
}
