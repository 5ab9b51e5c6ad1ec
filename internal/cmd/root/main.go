package root

import (
	"fmt"
	"os"

	"github.com/ashpursglove/traycalc/internal/cmd/setup"
	"github.com/ashpursglove/traycalc/internal/displayer"
	"github.com/ashpursglove/traycalc/internal/project"
	"github.com/ashpursglove/traycalc/internal/report"
	"github.com/ashpursglove/traycalc/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	catalogue, err := setup.Catalogue()
	if err != nil {
		log.Fatal("failed to load cable/tray library", zap.Error(err))
	}

	proj, path, err := setup.Project()
	if err != nil {
		log.Fatal("failed to load project", zap.Error(err))
	}

	if viper.GetBool("no-tui") {
		printSummary(proj)
		return
	}

	d := displayer.New(catalogue, proj, path, !viper.GetBool("light"))
	if err := d.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func printSummary(proj *project.Project) {
	in := report.NewInput(proj.Entries, proj.Tray)
	if err := report.WriteText(os.Stdout, in); err != nil {
		log.Error("failed to print summary", zap.Error(err))
	}
}
