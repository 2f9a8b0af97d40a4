package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "boardplan",
	Short: "Poster board and judge assignment planner",
	Long: `boardplan assigns poster presenters to boards across the event days
and pairs reviewing judges with each poster, keeping judge loads balanced and
avoiding same-lab reviews where possible.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
