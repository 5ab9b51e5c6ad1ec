package cmd

import (
	"fmt"
	"os"

	"github.com/ashpursglove/traycalc/internal/cmd/root"
	"github.com/ashpursglove/traycalc/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "traycalc",
	Short: "Cable tray load and fill calculator",
	Long: `traycalc checks electrical cable tray loading: weight per metre against
the tray's allowable load, and cross-sectional fill against the
recommended fill ratio. Without flags it opens the interactive
calculator.`,
	Run: root.Run,
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringP("project", "p", "", "Project file (JSON, comments allowed)")
	rootCmd.PersistentFlags().StringSlice("library", nil, "User library YAML file, layered over the presets (repeatable)")
	rootCmd.Flags().Bool("no-tui", false, "Run without TUI (print the summary)")
	rootCmd.Flags().Bool("light", false, "Start in the light theme")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("library", rootCmd.PersistentFlags().Lookup("library"))
	viper.BindPFlag("no-tui", rootCmd.Flags().Lookup("no-tui"))
	viper.BindPFlag("light", rootCmd.Flags().Lookup("light"))

	// Set default values
	viper.SetDefault("debug", false)
	viper.SetDefault("no-tui", false)
	viper.SetDefault("light", false)
}

func initLogger() {
	log.InitLogger(viper.GetBool("debug"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
