package partition

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/symposia/boardplan/core/model"
)

// DayLabels builds the default label sequence "Day 1".."Day n".
func DayLabels(days int) []string {
	labels := make([]string, days)
	for i := range labels {
		labels[i] = fmt.Sprintf("Day %d", i+1)
	}
	return labels
}

// AssignBoards shuffles the roster and lays it out across the given days.
//
// The shuffled roster is split into contiguous day groups: each of the first
// d-1 days receives n/d posters and the last day the remainder. Within a day,
// boards are numbered 1..k in post-shuffle order and the session follows board
// parity (odd AM, even PM). The result is re-sorted chronologically, so the
// shuffle decides who gets which board, not the display order.
//
// The random source is supplied by the caller; the same source state and input
// always produce the same layout.
func AssignBoards(presenters []model.Presenter, dayLabels []string, rng *rand.Rand) ([]model.AssignedPresenter, error) {
	if len(dayLabels) == 0 {
		return nil, errors.New("at least one day is required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	n := len(presenters)
	if n == 0 {
		return nil, nil
	}

	order := make([]model.Presenter, n)
	copy(order, presenters)
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	days := len(dayLabels)
	perDay := n / days
	assigned := make([]model.AssignedPresenter, 0, n)
	idx := 0
	for d, label := range dayLabels {
		size := perDay
		if d == days-1 {
			size = n - perDay*(days-1)
		}
		for board := 1; board <= size; board++ {
			assigned = append(assigned, model.AssignedPresenter{
				Presenter: order[idx],
				Day:       label,
				Session:   model.SessionFor(board),
				Board:     board,
			})
			idx++
		}
	}

	sortChronological(assigned, dayLabels)
	return assigned, nil
}

// sortChronological orders posters by day, then AM before PM, then board.
func sortChronological(assigned []model.AssignedPresenter, dayLabels []string) {
	dayIndex := make(map[string]int, len(dayLabels))
	for i, label := range dayLabels {
		dayIndex[label] = i
	}
	sessionOrder := map[string]int{model.SessionAM: 0, model.SessionPM: 1}
	sort.Slice(assigned, func(i, j int) bool {
		a, b := assigned[i], assigned[j]
		if dayIndex[a.Day] != dayIndex[b.Day] {
			return dayIndex[a.Day] < dayIndex[b.Day]
		}
		if sessionOrder[a.Session] != sessionOrder[b.Session] {
			return sessionOrder[a.Session] < sessionOrder[b.Session]
		}
		return a.Board < b.Board
	})
}
