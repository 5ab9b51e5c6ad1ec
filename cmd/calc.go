package cmd

import (
	"github.com/ashpursglove/traycalc/internal/cmd/calc"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate a project file and print the summary",
	Run:   calc.Run,
}

func init() {
	calcCmd.Flags().Bool("strict", false, "Exit non-zero when the tray is over a limit")
	calcCmd.Flags().StringSlice("cable", nil, "Add a catalogue cable as NAME:QTY (repeatable)")
	viper.BindPFlag("strict", calcCmd.Flags().Lookup("strict"))
	viper.SetDefault("strict", false)

	rootCmd.AddCommand(calcCmd)
}
