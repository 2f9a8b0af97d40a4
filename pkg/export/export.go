// Package export renders the assignment report as CSV files or JSON. Visual
// spreadsheet formatting is left to external tooling; these writers only lay
// out the tables.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/symposia/boardplan/core/model"
	"github.com/symposia/boardplan/core/report"
	"github.com/symposia/boardplan/core/schedule"
)

// File names used by WriteReportCSV, one per report table.
const (
	PosterAssignmentsFile      = "poster_assignments.csv"
	JudgeScheduleGridFile      = "judge_schedule_grid.csv"
	JudgeReviewAssignmentsFile = "judge_review_assignments.csv"
	OriginalPresentersFile     = "original_presenters.csv"
	OriginalJudgesFile         = "original_judges.csv"
)

// WriteReportJSON writes the whole report to w as a single JSON document.
func WriteReportJSON(w io.Writer, rep report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteReportCSV writes each report table as its own CSV file under dir,
// creating the directory if needed.
func WriteReportCSV(dir string, rep report.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{PosterAssignmentsFile, func(w io.Writer) error { return WritePosterAssignments(w, rep.PosterAssignments) }},
		{JudgeScheduleGridFile, func(w io.Writer) error { return WriteScheduleGrid(w, rep.JudgeScheduleGrid) }},
		{JudgeReviewAssignmentsFile, func(w io.Writer) error { return WriteJudgeReviews(w, rep.JudgeReviewAssignments) }},
		{OriginalPresentersFile, func(w io.Writer) error { return WritePresenters(w, rep.OriginalPresenters) }},
		{OriginalJudgesFile, func(w io.Writer) error { return WriteJudges(w, rep.OriginalJudges) }},
	}
	for _, table := range writers {
		if err := writeFile(filepath.Join(dir, table.name), table.write); err != nil {
			return fmt.Errorf("write %s: %w", table.name, err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePosterAssignments writes the poster-centric table. Judge columns are
// labeled Judge_1..Judge_R and sit between the presenter name and the lab,
// matching the layout review committees expect.
func WritePosterAssignments(w io.Writer, rows []model.PosterAssignment) error {
	judges := 0
	if len(rows) > 0 {
		judges = len(rows[0].Judges)
	}
	header := []string{"Day", "Session", "Board", "FirstName", "LastName"}
	for i := 1; i <= judges; i++ {
		header = append(header, fmt.Sprintf("Judge_%d", i))
	}
	header = append(header, "Lab", "Poster_Title", "Role")

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.Day, r.Session, strconv.Itoa(r.Board), r.FirstName, r.LastName}
		rec = append(rec, r.Judges...)
		rec = append(rec, r.Lab, r.Title, r.Role)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScheduleGrid writes the judge-by-slot board matrix.
func WriteScheduleGrid(w io.Writer, grid schedule.Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Judge"}, grid.Columns...)); err != nil {
		return err
	}
	for _, row := range grid.Rows {
		if err := cw.Write(append([]string{row.Judge}, row.Cells...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJudgeReviews writes the judge-centric assignment list.
func WriteJudgeReviews(w io.Writer, rows []model.JudgeReview) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Judge", "Assigned_Posters"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Judge, r.AssignedPosters}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePresenters writes the untouched presenter input table.
func WritePresenters(w io.Writer, rows []model.Presenter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"FirstName", "LastName", "Lab", "Poster_Title", "Role"}); err != nil {
		return err
	}
	for _, p := range rows {
		if err := cw.Write([]string{p.FirstName, p.LastName, p.Lab, p.Title, p.Role}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJudges writes the untouched judge input table.
func WriteJudges(w io.Writer, rows []model.Judge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Id", "Name", "Lab"}); err != nil {
		return err
	}
	for _, j := range rows {
		if err := cw.Write([]string{j.ID, j.Name, j.Lab}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
