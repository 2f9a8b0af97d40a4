package config

import "fmt"

// EventConfig defines the shape of the presentation event.
type EventConfig struct {
	// Days is the number of presentation days.
	Days int `json:"days"`
	// DayLabels optionally overrides the generated "Day 1".."Day N" labels.
	// When set, it must name each day exactly once.
	DayLabels []string `json:"day_labels"`
	// ReviewsPerPoster is the number of distinct judges per poster.
	ReviewsPerPoster int `json:"reviews_per_poster"`
	// Seed drives the board shuffle so identical inputs reproduce identical
	// layouts.
	Seed int64 `json:"seed"`
}

// SetDefaults applies sane defaults.
func (c *EventConfig) SetDefaults() {
	if c.Days == 0 {
		c.Days = 2
	}
	if c.ReviewsPerPoster == 0 {
		c.ReviewsPerPoster = 2
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if len(c.DayLabels) == 0 {
		c.DayLabels = make([]string, c.Days)
		for i := range c.DayLabels {
			c.DayLabels[i] = fmt.Sprintf("Day %d", i+1)
		}
	}
}

// Validate checks mandatory fields.
func (c EventConfig) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if c.ReviewsPerPoster < 1 {
		return fmt.Errorf("reviews_per_poster must be at least 1")
	}
	if len(c.DayLabels) != c.Days {
		return fmt.Errorf("day_labels must name %d days, got %d", c.Days, len(c.DayLabels))
	}
	return nil
}

// InputConfig points at the presenter and judge tables.
type InputConfig struct {
	// Presenters is the path of the presenter table (.csv or .json).
	Presenters string `json:"presenters"`
	// Judges is the path of the judge table (.csv or .json).
	Judges string `json:"judges"`
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	if c.Presenters == "" {
		return fmt.Errorf("input.presenters is required")
	}
	if c.Judges == "" {
		return fmt.Errorf("input.judges is required")
	}
	return nil
}

// OutputConfig controls where and how the report is written.
type OutputConfig struct {
	// Dir is the directory the report files are written to.
	Dir string `json:"dir"`
	// Format selects the renderer: "csv", "json" or "both".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "out"
	}
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	switch c.Format {
	case "csv", "json", "both":
		return nil
	default:
		return fmt.Errorf("unknown output format %s", c.Format)
	}
}
