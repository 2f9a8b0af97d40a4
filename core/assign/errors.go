package assign

import "fmt"

// CapacityError reports a poster for which fewer distinct judges exist than
// reviews were requested, even after falling back to the full judge pool.
// The run aborts; no partial result is returned.
type CapacityError struct {
	PosterTitle string
	Day         string
	Board       int
	Required    int
	Available   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf(
		"not enough judges available for poster %q on %s at Board %d: required %d judges, but only %d were found; add more judges or adjust the eligibility criteria",
		e.PosterTitle, e.Day, e.Board, e.Required, e.Available,
	)
}
