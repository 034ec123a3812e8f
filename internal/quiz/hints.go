package quiz

import (
	"fmt"
	"unicode"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// Hint builds a nudge for the current step. It never names the expected
// answer: country and capital hints give the first letter, geo hints
// paraphrase the fact. Finished runs get an empty hint.
func (s *Session) Hint() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return ""
	}

	country := s.pool[s.levelIndex]
	switch s.step {
	case StepCountry:
		return fmt.Sprintf("It starts with '%s' and lies in %s.", firstLetter(country.Name), country.Continent)
	case StepCapital:
		return fmt.Sprintf("The capital starts with '%s'.", firstLetter(country.Capital))
	case StepGeo:
		return geoHint(country, s.geoQuestion())
	}
	return ""
}

// geoHint paraphrases the asked fact without repeating a choice label.
func geoHint(c entities.Country, q *entities.GeoQuestion) string {
	switch q.Kind {
	case entities.GeoKindLandlocked:
		if c.Landlocked {
			return "This country has no coastline."
		}
		return "This country touches the sea."
	case entities.GeoKindDriveSide:
		if c.DriveSide == entities.DriveSideLeft {
			return "Motorists here keep to the same side as in the UK and Japan."
		}
		return "Motorists here keep to the same side as in the US and most of Europe."
	}
	return ""
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}
