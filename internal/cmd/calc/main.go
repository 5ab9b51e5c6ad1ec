package calc

import (
	"os"

	"github.com/ashpursglove/traycalc/internal/cmd/setup"
	"github.com/ashpursglove/traycalc/internal/report"
	"github.com/ashpursglove/traycalc/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	specs, _ := cmd.Flags().GetStringSlice("cable")
	if viper.GetString("project") == "" && len(specs) == 0 {
		log.Fatal("calc needs cables to check: pass --project and/or --cable")
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

	in := report.NewInput(proj.Entries, proj.Tray)
	if err := report.WriteText(os.Stdout, in); err != nil {
		log.Fatal("failed to print summary", zap.Error(err))
	}

	if viper.GetBool("strict") && !in.Stats.Classify().OK() {
		os.Exit(1)
	}
}
