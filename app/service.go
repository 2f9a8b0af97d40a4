// Package app wires the configuration, loaders, engine and exporters into one
// batch run.
package app

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/symposia/boardplan/config"
	"github.com/symposia/boardplan/core/assign"
	"github.com/symposia/boardplan/core/model"
	"github.com/symposia/boardplan/core/partition"
	"github.com/symposia/boardplan/core/report"
	"github.com/symposia/boardplan/core/schedule"
	"github.com/symposia/boardplan/infra/logger"
	"github.com/symposia/boardplan/infra/tables"
	"github.com/symposia/boardplan/pkg/export"
)

// ReportJSONFile is the file name used for the JSON rendering of the report.
const ReportJSONFile = "report.json"

// Service runs one assignment pass from configuration.
type Service struct {
	cfg *config.Config
	log logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	zerolog.SetGlobalLevel(cfg.Logging.ZerologLevel())
	return &Service{cfg: cfg, log: logger.New("service")}, nil
}

// Run loads the input tables, executes the engine and writes the report.
// A capacity shortfall aborts the run with no partial output.
func (s *Service) Run() error {
	presenters, judges, err := s.LoadInputs()
	if err != nil {
		return err
	}

	rep, err := s.Plan(presenters, judges)
	if err != nil {
		return err
	}

	if err := s.write(rep); err != nil {
		return err
	}

	s.log.Infof("physical boards needed: %d", rep.Summary.PhysicalBoardsNeeded)
	s.log.Infof("total posters: %d, total judges: %d", rep.Summary.TotalPosters, rep.Summary.TotalJudges)
	s.log.Infof("judge load: mean %.2f, stddev %.2f, min %d, max %d",
		rep.Summary.MeanLoad, rep.Summary.LoadStdDev, rep.Summary.MinLoad, rep.Summary.MaxLoad)
	return nil
}

// LoadInputs reads and validates the presenter and judge tables.
func (s *Service) LoadInputs() ([]model.Presenter, []model.Judge, error) {
	presenters, err := tables.LoadPresenters(s.cfg.Input.Presenters)
	if err != nil {
		return nil, nil, fmt.Errorf("presenter table: %w", err)
	}
	judges, err := tables.LoadJudges(s.cfg.Input.Judges)
	if err != nil {
		return nil, nil, fmt.Errorf("judge table: %w", err)
	}
	s.log.Infof("loaded %d presenters and %d judges", len(presenters), len(judges))
	return presenters, judges, nil
}

// Plan executes the engine on already-loaded tables and assembles the report.
func (s *Service) Plan(presenters []model.Presenter, judges []model.Judge) (report.Report, error) {
	ev := s.cfg.Event
	rng := rand.New(rand.NewSource(ev.Seed))

	assigned, err := partition.AssignBoards(presenters, ev.DayLabels, rng)
	if err != nil {
		return report.Report{}, fmt.Errorf("assign boards: %w", err)
	}

	res, err := assign.New(s.log).Assign(assigned, judges, ev.ReviewsPerPoster)
	if err != nil {
		return report.Report{}, err
	}

	grid := schedule.Build(judges, res.PerJudge, ev.DayLabels)
	return report.Assemble(assigned, res, grid, presenters, judges), nil
}

func (s *Service) write(rep report.Report) error {
	out := s.cfg.Output
	if out.Format == "csv" || out.Format == "both" {
		if err := export.WriteReportCSV(out.Dir, rep); err != nil {
			return err
		}
		s.log.Infof("wrote CSV report to %s", out.Dir)
	}
	if out.Format == "json" || out.Format == "both" {
		if err := os.MkdirAll(out.Dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		path := filepath.Join(out.Dir, ReportJSONFile)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := export.WriteReportJSON(f, rep); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		s.log.Infof("wrote JSON report to %s", path)
	}
	return nil
}
