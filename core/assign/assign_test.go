package assign

import (
	"errors"
	"fmt"
	"testing"

	"github.com/symposia/boardplan/core/model"
	"github.com/symposia/boardplan/infra/logger"
)

func judge(id, name, lab string) model.Judge {
	return model.Judge{ID: id, Name: name, Lab: lab}
}

func poster(title, lab, day, session string, board int) model.AssignedPresenter {
	return model.AssignedPresenter{
		Presenter: model.Presenter{FirstName: "F", LastName: "L", Lab: lab, Title: title},
		Day:       day,
		Session:   session,
		Board:     board,
	}
}

func TestAssignExactReviewCount(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabA"),
		judge("j2", "Ben", "LabB"),
		judge("j3", "Cam", "LabC"),
	}
	posters := []model.AssignedPresenter{
		poster("P1", "LabA", "Day 1", "AM", 1),
		poster("P2", "LabB", "Day 1", "PM", 2),
	}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	for _, row := range res.Posters {
		if len(row.Judges) != 2 {
			t.Fatalf("poster %s: %d judges, want 2", row.Title, len(row.Judges))
		}
		if row.Judges[0] == row.Judges[1] {
			t.Errorf("poster %s: judge %s assigned twice", row.Title, row.Judges[0])
		}
	}
}

func TestAssignLabExclusion(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabA"),
		judge("j2", "Ben", "LabA"),
		judge("j3", "Cam", "LabB"),
	}
	posters := []model.AssignedPresenter{poster("P1", "LabA", "Day 1", "AM", 1)}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got := res.Posters[0].Judges[0]; got != "Cam" {
		t.Fatalf("selected %s, want the only non-LabA judge Cam", got)
	}
}

func TestAssignFallbackToFullPool(t *testing.T) {
	// Only one judge outside LabA but two reviews requested: the lab
	// exclusion is best-effort, so the full pool is used and the two
	// least-loaded judges win in input order.
	judges := []model.Judge{
		judge("j1", "Ada", "LabA"),
		judge("j2", "Ben", "LabA"),
		judge("j3", "Cam", "LabB"),
	}
	posters := []model.AssignedPresenter{poster("P1", "LabA", "Day 1", "AM", 1)}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	got := res.Posters[0].Judges
	if got[0] != "Ada" || got[1] != "Ben" {
		t.Fatalf("selected %v, want [Ada Ben] (input order at equal load)", got)
	}
}

func TestAssignCapacityError(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabA"),
		judge("j2", "Ben", "LabB"),
	}
	posters := []model.AssignedPresenter{
		poster("P1", "LabC", "Day 1", "AM", 1),
		poster("P2", "LabC", "Day 1", "PM", 2),
	}
	_, err := New(logger.NopLogger{}).Assign(posters, judges, 3)
	if err == nil {
		t.Fatalf("expected capacity error")
	}
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("error %T, want *CapacityError", err)
	}
	if capErr.PosterTitle != "P1" || capErr.Day != "Day 1" || capErr.Board != 1 {
		t.Errorf("error names %q on %s board %d, want first poster P1 on Day 1 board 1",
			capErr.PosterTitle, capErr.Day, capErr.Board)
	}
	if capErr.Required != 3 || capErr.Available != 2 {
		t.Errorf("required %d available %d, want 3 and 2", capErr.Required, capErr.Available)
	}
}

func TestAssignStableTieBreak(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabX"),
		judge("j2", "Ben", "LabX"),
		judge("j3", "Cam", "LabX"),
	}
	// All judges start at load 0, so the first poster must take the first
	// two in input order; the second poster then sees Cam as least loaded.
	posters := []model.AssignedPresenter{
		poster("P1", "LabA", "Day 1", "AM", 1),
		poster("P2", "LabA", "Day 1", "PM", 2),
	}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	first := res.Posters[0].Judges
	if first[0] != "Ada" || first[1] != "Ben" {
		t.Fatalf("first poster got %v, want [Ada Ben]", first)
	}
	second := res.Posters[1].Judges
	if second[0] != "Cam" {
		t.Fatalf("second poster got %v, want Cam first (lowest load)", second)
	}
}

func TestAssignLoadBalance(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabA"),
		judge("j2", "Ben", "LabB"),
		judge("j3", "Cam", "LabC"),
		judge("j4", "Dee", "LabD"),
	}
	posters := make([]model.AssignedPresenter, 0, 11)
	for i := 0; i < 11; i++ {
		posters = append(posters, poster(fmt.Sprintf("P%d", i), "LabX", "Day 1", "AM", i+1))
	}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	min, max := len(posters)*2, 0
	total := 0
	for _, j := range judges {
		load := len(res.PerJudge[j.ID])
		total += load
		if load < min {
			min = load
		}
		if load > max {
			max = load
		}
	}
	if total != len(posters)*2 {
		t.Fatalf("total load %d, want %d", total, len(posters)*2)
	}
	if max-min > 1 {
		t.Fatalf("greedy balance violated: min %d max %d", min, max)
	}
}

func TestAssignReviewSummaryFormat(t *testing.T) {
	judges := []model.Judge{judge("j1", "Ada", "LabX")}
	posters := []model.AssignedPresenter{
		poster("P1", "LabA", "Day 1", "AM", 3),
		poster("P2", "LabB", "Day 2", "PM", 4),
	}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	want := "Day 1 (Board 3),Day 2 (Board 4)"
	if got := res.Reviews[0].AssignedPosters; got != want {
		t.Fatalf("summary %q, want %q", got, want)
	}
}

func TestAssignJudgeRowsCoverIdleJudges(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabX"),
		judge("j2", "Ben", "LabX"),
	}
	posters := []model.AssignedPresenter{poster("P1", "LabA", "Day 1", "AM", 1)}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(res.Reviews) != 2 {
		t.Fatalf("%d judge rows, want one per judge", len(res.Reviews))
	}
	if res.Reviews[1].Judge != "Ben" || res.Reviews[1].AssignedPosters != "" {
		t.Fatalf("idle judge row = %+v, want Ben with empty list", res.Reviews[1])
	}
}

func TestAssignDuplicateNamesStayDistinct(t *testing.T) {
	judges := []model.Judge{
		judge("j1", "Ada", "LabA"),
		judge("j2", "Ada", "LabB"),
	}
	posters := []model.AssignedPresenter{
		poster("P1", "LabX", "Day 1", "AM", 1),
		poster("P2", "LabX", "Day 1", "PM", 2),
	}
	res, err := New(logger.NopLogger{}).Assign(posters, judges, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(res.PerJudge["j1"]) != 1 || len(res.PerJudge["j2"]) != 1 {
		t.Fatalf("loads j1=%d j2=%d, want one poster each despite the shared name",
			len(res.PerJudge["j1"]), len(res.PerJudge["j2"]))
	}
}

func TestAssignInvalidInputs(t *testing.T) {
	a := New(logger.NopLogger{})
	posters := []model.AssignedPresenter{poster("P1", "LabA", "Day 1", "AM", 1)}

	if _, err := a.Assign(posters, []model.Judge{judge("j1", "Ada", "LabB")}, 0); err == nil {
		t.Errorf("expected error for zero reviews per poster")
	}
	if _, err := a.Assign(posters, []model.Judge{judge("", "Ada", "LabB")}, 1); err == nil {
		t.Errorf("expected error for judge without id")
	}
	dup := []model.Judge{judge("j1", "Ada", "LabB"), judge("j1", "Ben", "LabC")}
	if _, err := a.Assign(posters, dup, 1); err == nil {
		t.Errorf("expected error for duplicate judge id")
	}
}
