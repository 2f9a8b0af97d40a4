package model

// Session labels for the two halves of a presentation day.
const (
	SessionAM = "AM"
	SessionPM = "PM"
)

// Presenter is one row of the input roster. Identity is the row position;
// duplicate names are kept as distinct posters.
type Presenter struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Lab       string `json:"lab"`
	Title     string `json:"poster_title"`
	Role      string `json:"role,omitempty"`
}

// Judge reviews posters. ID is the engine-side identity: two judges sharing a
// name keep separate load counters as long as their IDs differ.
type Judge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Lab  string `json:"lab"`
}

// Slot identifies one (day, session) half-day of the event.
type Slot struct {
	Day     string `json:"day"`
	Session string `json:"session"`
}

// AssignedPresenter couples a presenter with its board placement.
type AssignedPresenter struct {
	Presenter
	Day     string `json:"day"`
	Session string `json:"session"`
	Board   int    `json:"board"`
}

// Slot returns the half-day the poster is presented in.
func (a AssignedPresenter) Slot() Slot {
	return Slot{Day: a.Day, Session: a.Session}
}

// SessionFor derives the session from a board number. Odd boards present in
// the morning, even boards in the afternoon.
func SessionFor(board int) string {
	if board%2 == 1 {
		return SessionAM
	}
	return SessionPM
}
