package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres/repository"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

// ErrNoCountries is returned when the dataset has no entries to quiz on.
var ErrNoCountries = errors.New("no countries available")

// QuizService builds quiz sessions sized by user preferences.
type QuizService struct {
	countries CountryRepository
	settings  SettingsRepository
	rng       *rand.Rand
}

// NewQuizService creates a new quiz service.
func NewQuizService(countries CountryRepository, settings SettingsRepository) *QuizService {
	return &QuizService{
		countries: countries,
		settings:  settings,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewRun starts a fresh session for the user, sized by their settings.
// Users who never saved settings play with the defaults.
func (s *QuizService) NewRun(ctx context.Context, userID int64) (*quiz.Session, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if settings == nil {
		settings = entities.NewUserSettings(userID)
	}

	all := s.countries.All()
	if len(all) == 0 {
		return nil, ErrNoCountries
	}

	// Each session gets its own rng so concurrent games stay independent.
	rng := rand.New(rand.NewSource(s.rng.Int63()))

	return quiz.NewSession(all, rng, settings.LevelsPerRun), nil
}
