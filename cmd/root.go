// Package cmd implements the puzzlegen command line interface.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "puzzlegen",
	Short: "Generate and validate logic puzzles",
	Long: `puzzlegen synthesizes logic puzzles (classic and killer grid-fill
puzzles, word searches, crosswords, and run-length picture puzzles) and
validates that picture puzzles are solvable by pure deduction.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl, err := logrus.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logrus.SetLevel(lvl)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error")

	viper.SetEnvPrefix("PUZZLEGEN")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}
