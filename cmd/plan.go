package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/symposia/boardplan/app"
	"github.com/symposia/boardplan/config"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate board and judge assignments",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	return svc.Run()
}
