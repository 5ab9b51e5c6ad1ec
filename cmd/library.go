package cmd

import (
	librarycmd "github.com/ashpursglove/traycalc/internal/cmd/library"

	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:       "library (cables|trays)",
	Short:     "List the merged cable / tray catalogue",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"cables", "trays"},
	Run:       librarycmd.Run,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}
