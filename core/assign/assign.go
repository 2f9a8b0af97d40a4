package assign

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/symposia/boardplan/core/logger"
	"github.com/symposia/boardplan/core/model"
)

// judgeState tracks one judge's running load and reviews within a single pass.
type judgeState struct {
	judge   model.Judge
	load    int
	reviews []model.ReviewSlot
}

// Result holds both outputs of an assignment pass plus the per-judge review
// lists the schedule grid is derived from.
type Result struct {
	// Posters has one row per poster, in the input (chronological) order.
	Posters []model.PosterAssignment
	// Reviews has one row per judge, in judge input order.
	Reviews []model.JudgeReview
	// PerJudge maps judge ID to that judge's reviews in assignment order.
	PerJudge map[string][]model.ReviewSlot
}

// Assigner pairs judges with posters while keeping judge loads balanced.
type Assigner struct {
	log logger.Logger
}

// New returns an Assigner logging through log.
func New(log logger.Logger) *Assigner {
	return &Assigner{log: log}
}

// Assign selects reviewsPerPoster distinct judges for every poster.
//
// Judges from the poster's own lab are excluded when enough outside judges
// exist; otherwise the full pool is used. Within the pool, selection is by
// lowest current load with ties broken by input order (stable sort). Returns a
// *CapacityError when some poster cannot be given reviewsPerPoster distinct
// judges even from the full pool.
func (a *Assigner) Assign(posters []model.AssignedPresenter, judges []model.Judge, reviewsPerPoster int) (*Result, error) {
	if reviewsPerPoster < 1 {
		return nil, errors.New("reviews per poster must be at least 1")
	}

	states := make([]*judgeState, len(judges))
	seen := make(map[string]struct{}, len(judges))
	for i, j := range judges {
		if j.ID == "" {
			return nil, fmt.Errorf("judge %q has no id", j.Name)
		}
		if _, dup := seen[j.ID]; dup {
			return nil, fmt.Errorf("duplicate judge id %q", j.ID)
		}
		seen[j.ID] = struct{}{}
		states[i] = &judgeState{judge: j}
	}

	res := &Result{
		Posters:  make([]model.PosterAssignment, 0, len(posters)),
		PerJudge: make(map[string][]model.ReviewSlot, len(judges)),
	}

	for _, poster := range posters {
		candidates := eligible(states, poster.Lab)
		if len(candidates) < reviewsPerPoster {
			a.log.Debugf("poster %q: only %d judges outside lab %s, falling back to full pool",
				poster.Title, len(candidates), poster.Lab)
			candidates = all(states)
		}

		// Stable sort keeps input order between equally loaded judges.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].load < candidates[j].load
		})
		if len(candidates) < reviewsPerPoster {
			return nil, &CapacityError{
				PosterTitle: poster.Title,
				Day:         poster.Day,
				Board:       poster.Board,
				Required:    reviewsPerPoster,
				Available:   len(candidates),
			}
		}
		selected := candidates[:reviewsPerPoster]

		names := make([]string, len(selected))
		for i, st := range selected {
			st.load++
			st.reviews = append(st.reviews, model.ReviewSlot{
				Title:   poster.Title,
				Day:     poster.Day,
				Session: poster.Session,
				Board:   poster.Board,
			})
			names[i] = st.judge.Name
		}

		res.Posters = append(res.Posters, model.PosterAssignment{
			Day:       poster.Day,
			Session:   poster.Session,
			Board:     poster.Board,
			FirstName: poster.FirstName,
			LastName:  poster.LastName,
			Judges:    names,
			Lab:       poster.Lab,
			Title:     poster.Title,
			Role:      poster.Role,
		})
	}

	res.Reviews = make([]model.JudgeReview, len(states))
	for i, st := range states {
		res.PerJudge[st.judge.ID] = st.reviews
		res.Reviews[i] = model.JudgeReview{
			Judge:           st.judge.Name,
			AssignedPosters: reviewSummary(st.reviews),
		}
	}

	a.log.Infof("assigned %d posters to %d judges (%d reviews per poster)",
		len(posters), len(judges), reviewsPerPoster)
	return res, nil
}

// eligible returns the judges outside lab, in input order.
func eligible(states []*judgeState, lab string) []*judgeState {
	var out []*judgeState
	for _, st := range states {
		if st.judge.Lab != lab {
			out = append(out, st)
		}
	}
	return out
}

func all(states []*judgeState) []*judgeState {
	out := make([]*judgeState, len(states))
	copy(out, states)
	return out
}

// reviewSummary renders a judge's reviews as "Day 1 (Board 3),Day 2 (Board 1)".
func reviewSummary(reviews []model.ReviewSlot) string {
	parts := make([]string, len(reviews))
	for i, r := range reviews {
		parts[i] = fmt.Sprintf("%s (Board %d)", r.Day, r.Board)
	}
	return strings.Join(parts, ",")
}
