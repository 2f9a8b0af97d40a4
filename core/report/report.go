// Package report assembles the engine outputs into the tables handed to an
// external renderer.
package report

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/symposia/boardplan/core/assign"
	"github.com/symposia/boardplan/core/model"
	"github.com/symposia/boardplan/core/schedule"
)

// Summary carries the run-level figures shown after an assignment pass.
// Physical boards are reused between the AM and PM sessions, so the count
// needed is half the highest board number, rounded up.
type Summary struct {
	PhysicalBoardsNeeded int     `json:"physical_boards_needed"`
	TotalPosters         int     `json:"total_posters"`
	TotalJudges          int     `json:"total_judges"`
	MeanLoad             float64 `json:"mean_load"`
	LoadStdDev           float64 `json:"load_std_dev"`
	MinLoad              int     `json:"min_load"`
	MaxLoad              int     `json:"max_load"`
}

// Report bundles the output tables. The original input tables ride along
// untouched so the renderer can reproduce them verbatim.
type Report struct {
	PosterAssignments      []model.PosterAssignment `json:"poster_assignments"`
	JudgeScheduleGrid      schedule.Grid            `json:"judge_schedule_grid"`
	JudgeReviewAssignments []model.JudgeReview      `json:"judge_review_assignments"`
	OriginalPresenters     []model.Presenter        `json:"original_presenters"`
	OriginalJudges         []model.Judge            `json:"original_judges"`
	Summary                Summary                  `json:"summary"`
}

// Assemble combines the partitioner, assigner and grid outputs into a Report.
func Assemble(assigned []model.AssignedPresenter, res *assign.Result, grid schedule.Grid, presenters []model.Presenter, judges []model.Judge) Report {
	return Report{
		PosterAssignments:      res.Posters,
		JudgeScheduleGrid:      grid,
		JudgeReviewAssignments: res.Reviews,
		OriginalPresenters:     presenters,
		OriginalJudges:         judges,
		Summary:                summarize(assigned, res, judges),
	}
}

func summarize(assigned []model.AssignedPresenter, res *assign.Result, judges []model.Judge) Summary {
	maxBoard := 0
	for _, a := range assigned {
		if a.Board > maxBoard {
			maxBoard = a.Board
		}
	}

	s := Summary{
		PhysicalBoardsNeeded: int(math.Ceil(float64(maxBoard) / 2)),
		TotalPosters:         len(assigned),
		TotalJudges:          len(judges),
	}
	if len(judges) == 0 {
		return s
	}

	loads := make([]float64, len(judges))
	s.MinLoad = len(res.PerJudge[judges[0].ID])
	for i, j := range judges {
		load := len(res.PerJudge[j.ID])
		loads[i] = float64(load)
		if load < s.MinLoad {
			s.MinLoad = load
		}
		if load > s.MaxLoad {
			s.MaxLoad = load
		}
	}
	s.MeanLoad = stat.Mean(loads, nil)
	if len(loads) > 1 {
		s.LoadStdDev = stat.StdDev(loads, nil)
	}
	return s
}
