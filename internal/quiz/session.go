package quiz

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// Step identifies which answer the current level expects.
type Step int

const (
	StepCountry Step = iota
	StepCapital
	StepGeo
)

func (s Step) String() string {
	switch s {
	case StepCountry:
		return "country"
	case StepCapital:
		return "capital"
	case StepGeo:
		return "geo"
	}
	return "unknown"
}

var (
	ErrEmptyAnswer   = errors.New("empty answer")
	ErrInvalidStep   = errors.New("operation not valid in current step")
	ErrInvalidChoice = errors.New("choice index out of range")
	ErrLevelCleared  = errors.New("level already cleared, waiting to advance")
	ErrQuizFinished  = errors.New("quiz already finished")
)

// Result reports the outcome of a single accepted submission.
type Result struct {
	Correct      bool
	Step         Step // step the submission was evaluated against
	LevelCleared bool // geo answered correctly, advance pending
}

// Session is one quiz run for a single player. Methods are safe to call
// from the update loop and the advance timer concurrently.
type Session struct {
	mu sync.Mutex

	source []entities.Country // full dataset snapshot, reused on restart
	limit  int
	rng    *rand.Rand

	pool       []entities.Country
	levelIndex int
	step       Step
	attempts   int
	correct    int
	streak     int
	bestStreak int
	geo        *entities.GeoQuestion
	advancing  bool
	startedAt  time.Time
}

// NewSession starts a run over a fresh shuffle of source. The limit is
// the user's levels-per-run setting; the rng makes runs reproducible.
func NewSession(source []entities.Country, rng *rand.Rand, limit int) *Session {
	s := &Session{
		source: source,
		limit:  limit,
		rng:    rng,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.pool = BuildPool(s.source, s.rng, s.limit)
	s.levelIndex = 0
	s.step = StepCountry
	s.attempts = 0
	s.correct = 0
	s.streak = 0
	s.bestStreak = 0
	s.geo = nil
	s.advancing = false
	s.startedAt = time.Now()
}

// SubmitText checks a free-text answer against the current country or
// capital. Input that normalizes to nothing is rejected without
// touching any counter.
func (s *Session) SubmitText(answer string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return Result{}, ErrQuizFinished
	}
	if s.advancing {
		return Result{}, ErrLevelCleared
	}
	if s.step != StepCountry && s.step != StepCapital {
		return Result{}, ErrInvalidStep
	}

	normalized := Normalize(answer)
	if normalized == "" {
		return Result{}, ErrEmptyAnswer
	}

	country := s.pool[s.levelIndex]
	expected := country.Name
	if s.step == StepCapital {
		expected = country.Capital
	}

	res := Result{Step: s.step}
	s.attempts++
	if normalized == Normalize(expected) {
		res.Correct = true
		s.markCorrect()
		if s.step == StepCountry {
			s.step = StepCapital
		} else {
			s.step = StepGeo
		}
	} else {
		s.streak = 0
	}
	return res, nil
}

// SubmitChoice checks a geo answer by choice index. A correct answer
// latches the level as cleared; the caller schedules Advance.
func (s *Session) SubmitChoice(index int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return Result{}, ErrQuizFinished
	}
	if s.advancing {
		return Result{}, ErrLevelCleared
	}
	if s.step != StepGeo {
		return Result{}, ErrInvalidStep
	}
	if index < 0 || index > 1 {
		return Result{}, ErrInvalidChoice
	}

	q := s.geoQuestion()
	res := Result{Step: StepGeo}
	s.attempts++
	if q.Correct(index) {
		res.Correct = true
		res.LevelCleared = true
		s.markCorrect()
		s.advancing = true
	} else {
		s.streak = 0
	}
	return res, nil
}

// Advance completes a cleared level: next country, step reset, geo
// question dropped. It fails unless SubmitChoice latched the level, so
// a stale timer firing after a restart changes nothing.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return ErrQuizFinished
	}
	if !s.advancing {
		return ErrInvalidStep
	}

	s.levelIndex++
	s.step = StepCountry
	s.geo = nil
	s.advancing = false
	return nil
}

// Restart rebuilds the pool with a fresh shuffle and zeroes every
// counter. Valid in any state.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// GeoQuestion returns the geo question for the current level,
// generating it on first access. Wrong answers see the same question
// until the level is cleared.
func (s *Session) GeoQuestion() (*entities.GeoQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return nil, ErrQuizFinished
	}
	if s.step != StepGeo {
		return nil, ErrInvalidStep
	}
	return s.geoQuestion(), nil
}

func (s *Session) geoQuestion() *entities.GeoQuestion {
	if s.geo == nil {
		s.geo = newGeoQuestion(s.pool[s.levelIndex], s.rng)
	}
	return s.geo
}

func (s *Session) markCorrect() {
	s.correct++
	s.streak++
	if s.streak > s.bestStreak {
		s.bestStreak = s.streak
	}
}

// Current returns the country of the level in play. The second value
// is false once the run is finished.
func (s *Session) Current() (entities.Country, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished() {
		return entities.Country{}, false
	}
	return s.pool[s.levelIndex], true
}

// Finished reports whether every level of the pool has been cleared.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished()
}

func (s *Session) finished() bool {
	return s.levelIndex >= len(s.pool)
}

// Accuracy returns the rounded percentage of correct submissions.
// A run with no submissions counts as 100.
func (s *Session) Accuracy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accuracy()
}

func (s *Session) accuracy() int {
	if s.attempts == 0 {
		return 100
	}
	return int(math.Round(100 * float64(s.correct) / float64(s.attempts)))
}

func (s *Session) LevelIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelIndex
}

func (s *Session) TotalLevels() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pool)
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func (s *Session) Correct() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct
}

func (s *Session) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

func (s *Session) BestStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestStreak
}

// Snapshot captures the run's counters for persistence. Levels cleared
// includes a level whose geo step is answered but not yet advanced.
func (s *Session) Snapshot(userID int64) *entities.RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := s.levelIndex
	if s.advancing {
		cleared++
	}
	return &entities.RunResult{
		UserID:        userID,
		LevelsTotal:   len(s.pool),
		LevelsCleared: cleared,
		Attempts:      s.attempts,
		Correct:       s.correct,
		BestStreak:    s.bestStreak,
		Accuracy:      s.accuracy(),
		StartedAt:     s.startedAt,
	}
}
