package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/symposia/boardplan/app"
	"github.com/symposia/boardplan/config"
	"github.com/symposia/boardplan/infra/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the input tables without assigning",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	presenters, judges, err := svc.LoadInputs()
	if err != nil {
		return err
	}
	logg := logger.New("validate")
	logg.Infof("inputs look good: %d presenters, %d judges", len(presenters), len(judges))
	if cfg.Event.ReviewsPerPoster > len(judges) {
		logg.Warnf("reviews_per_poster (%d) exceeds the judge count (%d); planning will fail",
			cfg.Event.ReviewsPerPoster, len(judges))
	}
	return nil
}
