// Package tables loads the presenter and judge input tables from CSV or JSON
// files and validates that the required columns are present before the engine
// ever runs.
package tables

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/symposia/boardplan/core/model"
)

// Column names accepted in the input tables.
const (
	ColFirstName = "FirstName"
	ColLastName  = "LastName"
	ColLab       = "Lab"
	ColTitle     = "Poster_Title"
	ColRole      = "Role"
	ColName      = "Name"
	ColID        = "Id"
)

// ValidationError reports required columns missing from an input table.
// It is raised before the assignment engine is invoked.
type ValidationError struct {
	Table   string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s table is missing required columns: %s",
		e.Table, strings.Join(e.Missing, ", "))
}

// LoadPresenters reads the presenter table at path. The format is chosen by
// file extension (.csv or .json).
func LoadPresenters(path string) ([]model.Presenter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presenter table: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadPresentersCSV(f)
	case ".json":
		return ReadPresentersJSON(f)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", ext)
	}
}

// LoadJudges reads the judge table at path. The format is chosen by file
// extension (.csv or .json).
func LoadJudges(path string) ([]model.Judge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open judge table: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadJudgesCSV(f)
	case ".json":
		return ReadJudgesJSON(f)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", ext)
	}
}

// ReadPresentersCSV parses a presenter table with a header row. Lab and
// Poster_Title are required, as is either the FirstName/LastName pair or a
// single combined Name column (carried in FirstName). Role is carried through
// when present.
func ReadPresentersCSV(r io.Reader) ([]model.Presenter, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read presenter table: %w", err)
	}
	if len(records) == 0 {
		return nil, &ValidationError{
			Table:   "presenter",
			Missing: []string{ColFirstName, ColLastName, ColLab, ColTitle},
		}
	}
	idx, missing := headerIndex(records[0], []string{ColLab, ColTitle})
	_, hasFirst := idx[ColFirstName]
	_, hasLast := idx[ColLastName]
	_, hasName := idx[ColName]
	if !(hasFirst && hasLast) && !hasName {
		missing = append(missing, ColFirstName, ColLastName)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Table: "presenter", Missing: missing}
	}

	presenters := make([]model.Presenter, 0, len(records)-1)
	for _, rec := range records[1:] {
		p := model.Presenter{
			FirstName: field(rec, idx, ColFirstName),
			LastName:  field(rec, idx, ColLastName),
			Lab:       field(rec, idx, ColLab),
			Title:     field(rec, idx, ColTitle),
			Role:      field(rec, idx, ColRole),
		}
		if p.FirstName == "" && p.LastName == "" {
			p.FirstName = field(rec, idx, ColName)
		}
		presenters = append(presenters, p)
	}
	return presenters, nil
}

// ReadJudgesCSV parses a judge table with a header row. Name and Lab are
// required. Judges without an Id column value get a generated one, so two
// judges sharing a name stay distinct in the engine.
func ReadJudgesCSV(r io.Reader) ([]model.Judge, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read judge table: %w", err)
	}
	required := []string{ColName, ColLab}
	if len(records) == 0 {
		return nil, &ValidationError{Table: "judge", Missing: required}
	}
	idx, missing := headerIndex(records[0], required)
	if len(missing) > 0 {
		return nil, &ValidationError{Table: "judge", Missing: missing}
	}

	judges := make([]model.Judge, 0, len(records)-1)
	for _, rec := range records[1:] {
		j := model.Judge{
			ID:   field(rec, idx, ColID),
			Name: field(rec, idx, ColName),
			Lab:  field(rec, idx, ColLab),
		}
		if j.ID == "" {
			j.ID = uuid.NewString()
		}
		judges = append(judges, j)
	}
	return judges, nil
}

// ReadPresentersJSON decodes a JSON array of presenters.
func ReadPresentersJSON(r io.Reader) ([]model.Presenter, error) {
	var presenters []model.Presenter
	if err := json.NewDecoder(r).Decode(&presenters); err != nil {
		return nil, fmt.Errorf("decode presenter table: %w", err)
	}
	return presenters, nil
}

// ReadJudgesJSON decodes a JSON array of judges, generating ids where absent.
func ReadJudgesJSON(r io.Reader) ([]model.Judge, error) {
	var judges []model.Judge
	if err := json.NewDecoder(r).Decode(&judges); err != nil {
		return nil, fmt.Errorf("decode judge table: %w", err)
	}
	for i := range judges {
		if judges[i].ID == "" {
			judges[i].ID = uuid.NewString()
		}
	}
	return judges, nil
}

// headerIndex maps column name to position and reports which of the required
// columns are absent. Header cells are matched after trimming whitespace.
func headerIndex(header, required []string) (map[string]int, []string) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	return idx, missing
}

func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
