package entities

// Geo question kinds.
const (
	GeoKindLandlocked = "landlocked"
	GeoKindDriveSide  = "driveside"
)

// GeoQuestion is the two-choice geography question asked on the last
// step of a level. Once generated for a level it stays fixed until the
// level is cleared, so a wrong answer re-presents the same choices.
type GeoQuestion struct {
	Kind         string // GeoKindLandlocked or GeoKindDriveSide
	Prompt       string
	Choices      [2]string
	CorrectIndex int
}

// Correct reports whether the given choice index answers the question.
func (q *GeoQuestion) Correct(index int) bool {
	return index == q.CorrectIndex
}
