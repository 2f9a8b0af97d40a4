// Package schedule derives the per-judge timetable from the assignment lists.
package schedule

import (
	"strconv"
	"strings"

	"github.com/symposia/boardplan/core/model"
)

// Grid is the judge-by-slot board matrix. Columns covers every
// (day, session) combination in chronological order; each row carries one
// cell per column.
type Grid struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Row is one judge's schedule. Cells align with Grid.Columns; a cell is the
// ", "-joined board numbers in assignment order, or empty when the judge has
// nothing in that slot.
type Row struct {
	Judge string   `json:"judge"`
	Cells []string `json:"cells"`
}

// Build lays out each judge's boards across the (day, session) slots.
// Judges appear in input order; perJudge is keyed by judge ID.
func Build(judges []model.Judge, perJudge map[string][]model.ReviewSlot, dayLabels []string) Grid {
	slots := make([]model.Slot, 0, len(dayLabels)*2)
	columns := make([]string, 0, len(dayLabels)*2)
	for _, day := range dayLabels {
		for _, session := range []string{model.SessionAM, model.SessionPM} {
			slots = append(slots, model.Slot{Day: day, Session: session})
			columns = append(columns, day+" "+session)
		}
	}

	rows := make([]Row, len(judges))
	for i, judge := range judges {
		cells := make([]string, len(slots))
		for s, slot := range slots {
			var boards []string
			for _, r := range perJudge[judge.ID] {
				if r.Day == slot.Day && r.Session == slot.Session {
					boards = append(boards, strconv.Itoa(r.Board))
				}
			}
			cells[s] = strings.Join(boards, ", ")
		}
		rows[i] = Row{Judge: judge.Name, Cells: cells}
	}
	return Grid{Columns: columns, Rows: rows}
}
