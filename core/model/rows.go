package model

// PosterAssignment is one poster-centric output row: board placement,
// presenter identity, and the reviewing judges in selection order
// (rendered as Judge_1..Judge_R columns).
type PosterAssignment struct {
	Day       string   `json:"day"`
	Session   string   `json:"session"`
	Board     int      `json:"board"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Judges    []string `json:"judges"`
	Lab       string   `json:"lab"`
	Title     string   `json:"poster_title"`
	Role      string   `json:"role,omitempty"`
}

// ReviewSlot records one poster a judge will review.
type ReviewSlot struct {
	Title   string `json:"poster_title"`
	Day     string `json:"day"`
	Session string `json:"session"`
	Board   int    `json:"board"`
}

// JudgeReview is one judge-centric output row. AssignedPosters is the
// human-readable "Day (Board N)" list in assignment order.
type JudgeReview struct {
	Judge           string `json:"judge"`
	AssignedPosters string `json:"assigned_posters"`
}
