package cmd

import (
	watchcmd "github.com/ashpursglove/traycalc/internal/cmd/watch"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate a project file whenever it changes",
	Run:   watchcmd.Run,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
