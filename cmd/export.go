package cmd

import (
	"github.com/ashpursglove/traycalc/internal/cmd/export"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:       "export (pdf|csv)",
	Short:     "Export a calculation report",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"pdf", "csv"},
	Run:       export.Run,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default: tray_report.pdf / tray_report.csv)")
	exportCmd.Flags().StringSlice("cable", nil, "Add a catalogue cable as NAME:QTY (repeatable)")
	viper.BindPFlag("output", exportCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(exportCmd)
}
