package quiz

import (
	"fmt"
	"math/rand"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// newGeoQuestion picks one of the two geo templates for a country and
// randomizes the choice order, tracking where the correct answer lands.
func newGeoQuestion(c entities.Country, rng *rand.Rand) *entities.GeoQuestion {
	var q entities.GeoQuestion
	var correct string

	if rng.Intn(2) == 0 {
		q.Kind = entities.GeoKindLandlocked
		q.Prompt = fmt.Sprintf("Is %s a landlocked country?", c.Name)
		q.Choices = [2]string{"Yes", "No"}
		correct = "No"
		if c.Landlocked {
			correct = "Yes"
		}
	} else {
		q.Kind = entities.GeoKindDriveSide
		q.Prompt = fmt.Sprintf("Which side of the road do they drive on in %s?", c.Name)
		q.Choices = [2]string{"Left", "Right"}
		correct = "Right"
		if c.DriveSide == entities.DriveSideLeft {
			correct = "Left"
		}
	}

	if rng.Intn(2) == 1 {
		q.Choices[0], q.Choices[1] = q.Choices[1], q.Choices[0]
	}
	for i, choice := range q.Choices {
		if choice == correct {
			q.CorrectIndex = i
		}
	}
	return &q
}
