package quiz_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

func testCountries() []entities.Country {
	return []entities.Country{
		{ID: "040", Name: "Austria", Capital: "Vienna", Continent: "Europe", Alpha2: "AT", Landlocked: true, DriveSide: entities.DriveSideRight},
		{ID: "076", Name: "Brazil", Capital: "Brasília", Continent: "South America", Alpha2: "BR", Landlocked: false, DriveSide: entities.DriveSideRight},
		{ID: "250", Name: "France", Capital: "Paris", Continent: "Europe", Alpha2: "FR", Landlocked: false, DriveSide: entities.DriveSideRight},
		{ID: "392", Name: "Japan", Capital: "Tokyo", Continent: "Asia", Alpha2: "JP", Landlocked: false, DriveSide: entities.DriveSideLeft},
	}
}

func newTestSession(limit int) *quiz.Session {
	return quiz.NewSession(testCountries(), rand.New(rand.NewSource(1)), limit)
}

// clearLevel answers all three steps correctly and advances.
func clearLevel(t *testing.T, s *quiz.Session) {
	t.Helper()

	c, ok := s.Current()
	if !ok {
		t.Fatal("Current() reported finished run")
	}
	if _, err := s.SubmitText(c.Name); err != nil {
		t.Fatalf("SubmitText(country) error = %v", err)
	}
	if _, err := s.SubmitText(c.Capital); err != nil {
		t.Fatalf("SubmitText(capital) error = %v", err)
	}
	q, err := s.GeoQuestion()
	if err != nil {
		t.Fatalf("GeoQuestion() error = %v", err)
	}
	if _, err := s.SubmitChoice(q.CorrectIndex); err != nil {
		t.Fatalf("SubmitChoice() error = %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
}

func TestSessionWrongCountryAnswer(t *testing.T) {
	s := newTestSession(4)

	res, err := s.SubmitText("Atlantis")
	if err != nil {
		t.Fatalf("SubmitText() error = %v", err)
	}
	if res.Correct {
		t.Error("wrong answer reported as correct")
	}
	if got := s.Attempts(); got != 1 {
		t.Errorf("Attempts() = %d, want 1", got)
	}
	if got := s.Correct(); got != 0 {
		t.Errorf("Correct() = %d, want 0", got)
	}
	if got := s.Streak(); got != 0 {
		t.Errorf("Streak() = %d, want 0", got)
	}
	if got := s.Step(); got != quiz.StepCountry {
		t.Errorf("Step() = %v, want %v; wrong answer must not advance", got, quiz.StepCountry)
	}
}

func TestSessionStepProgression(t *testing.T) {
	s := newTestSession(4)
	c, _ := s.Current()

	res, err := s.SubmitText(c.Name)
	if err != nil {
		t.Fatalf("SubmitText(country) error = %v", err)
	}
	if !res.Correct {
		t.Fatalf("correct country %q rejected", c.Name)
	}
	if got := s.Step(); got != quiz.StepCapital {
		t.Fatalf("Step() after country = %v, want %v", got, quiz.StepCapital)
	}

	res, err = s.SubmitText(c.Capital)
	if err != nil {
		t.Fatalf("SubmitText(capital) error = %v", err)
	}
	if !res.Correct {
		t.Fatalf("correct capital %q rejected", c.Capital)
	}
	if got := s.Step(); got != quiz.StepGeo {
		t.Fatalf("Step() after capital = %v, want %v", got, quiz.StepGeo)
	}

	if got := s.Streak(); got != 2 {
		t.Errorf("Streak() = %d, want 2", got)
	}
	if got := s.Attempts(); got != 2 {
		t.Errorf("Attempts() = %d, want 2", got)
	}
	if got := s.Correct(); got != 2 {
		t.Errorf("Correct() = %d, want 2", got)
	}
}

func TestSessionAnswerNormalization(t *testing.T) {
	brazil := entities.Country{
		ID: "076", Name: "Brazil", Capital: "Brasília",
		Continent: "South America", Alpha2: "BR", DriveSide: entities.DriveSideRight,
	}
	s := quiz.NewSession([]entities.Country{brazil}, rand.New(rand.NewSource(1)), 1)

	res, err := s.SubmitText("  brazil ")
	if err != nil {
		t.Fatalf("SubmitText() error = %v", err)
	}
	if !res.Correct {
		t.Error("lower-cased padded country name rejected")
	}

	// Unaccented spelling of an accented capital must match.
	res, err = s.SubmitText("BRASILIA")
	if err != nil {
		t.Fatalf("SubmitText() error = %v", err)
	}
	if !res.Correct {
		t.Error(`SubmitText("BRASILIA") rejected, want match for "Brasília"`)
	}
}

func TestSessionEmptyAnswerRejected(t *testing.T) {
	s := newTestSession(4)

	for _, in := range []string{"", "   ", "\n\t", "?!..."} {
		_, err := s.SubmitText(in)
		if !errors.Is(err, quiz.ErrEmptyAnswer) {
			t.Errorf("SubmitText(%q) error = %v, want ErrEmptyAnswer", in, err)
		}
	}

	if got := s.Attempts(); got != 0 {
		t.Errorf("Attempts() = %d after rejected input, want 0", got)
	}
	if got := s.Streak(); got != 0 {
		t.Errorf("Streak() = %d after rejected input, want 0", got)
	}
}

func TestSessionGeoClearAndAdvance(t *testing.T) {
	s := newTestSession(4)
	c, _ := s.Current()
	s.SubmitText(c.Name)
	s.SubmitText(c.Capital)

	q, err := s.GeoQuestion()
	if err != nil {
		t.Fatalf("GeoQuestion() error = %v", err)
	}

	res, err := s.SubmitChoice(q.CorrectIndex)
	if err != nil {
		t.Fatalf("SubmitChoice() error = %v", err)
	}
	if !res.Correct || !res.LevelCleared {
		t.Fatalf("SubmitChoice(correct) = %+v, want Correct and LevelCleared", res)
	}

	// Input is ignored while the advance is pending.
	if _, err := s.SubmitText("anything"); !errors.Is(err, quiz.ErrLevelCleared) {
		t.Errorf("SubmitText() during advance error = %v, want ErrLevelCleared", err)
	}
	if _, err := s.SubmitChoice(0); !errors.Is(err, quiz.ErrLevelCleared) {
		t.Errorf("SubmitChoice() during advance error = %v, want ErrLevelCleared", err)
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if got := s.LevelIndex(); got != 1 {
		t.Errorf("LevelIndex() = %d, want 1", got)
	}
	if got := s.Step(); got != quiz.StepCountry {
		t.Errorf("Step() = %v, want %v", got, quiz.StepCountry)
	}

	// A second advance without a cleared level is refused.
	if err := s.Advance(); !errors.Is(err, quiz.ErrInvalidStep) {
		t.Errorf("Advance() without cleared level error = %v, want ErrInvalidStep", err)
	}
}

func TestSessionGeoQuestionSticky(t *testing.T) {
	s := newTestSession(4)
	c, _ := s.Current()
	s.SubmitText(c.Name)
	s.SubmitText(c.Capital)

	first, err := s.GeoQuestion()
	if err != nil {
		t.Fatalf("GeoQuestion() error = %v", err)
	}

	if _, err := s.SubmitChoice(1 - first.CorrectIndex); err != nil {
		t.Fatalf("SubmitChoice(wrong) error = %v", err)
	}

	second, err := s.GeoQuestion()
	if err != nil {
		t.Fatalf("GeoQuestion() after wrong answer error = %v", err)
	}
	if first != second {
		t.Error("geo question regenerated after a wrong answer, want the same question")
	}
	if got := s.Streak(); got != 0 {
		t.Errorf("Streak() = %d after wrong geo answer, want 0", got)
	}
}

func TestSessionChoiceIndexValidation(t *testing.T) {
	s := newTestSession(4)
	c, _ := s.Current()
	s.SubmitText(c.Name)
	s.SubmitText(c.Capital)

	for _, idx := range []int{-1, 2, 10} {
		if _, err := s.SubmitChoice(idx); !errors.Is(err, quiz.ErrInvalidChoice) {
			t.Errorf("SubmitChoice(%d) error = %v, want ErrInvalidChoice", idx, err)
		}
	}
	if got := s.Attempts(); got != 2 {
		t.Errorf("Attempts() = %d, want 2; out-of-range choices must not count", got)
	}
}

func TestSessionWrongStepOperations(t *testing.T) {
	s := newTestSession(4)

	if _, err := s.SubmitChoice(0); !errors.Is(err, quiz.ErrInvalidStep) {
		t.Errorf("SubmitChoice() in country step error = %v, want ErrInvalidStep", err)
	}
	if _, err := s.GeoQuestion(); !errors.Is(err, quiz.ErrInvalidStep) {
		t.Errorf("GeoQuestion() in country step error = %v, want ErrInvalidStep", err)
	}

	c, _ := s.Current()
	s.SubmitText(c.Name)
	s.SubmitText(c.Capital)

	if _, err := s.SubmitText(c.Name); !errors.Is(err, quiz.ErrInvalidStep) {
		t.Errorf("SubmitText() in geo step error = %v, want ErrInvalidStep", err)
	}
}

func TestSessionFinishAndRestart(t *testing.T) {
	s := newTestSession(2)

	clearLevel(t, s)
	if s.Finished() {
		t.Fatal("Finished() = true before the last level")
	}
	clearLevel(t, s)

	if !s.Finished() {
		t.Fatal("Finished() = false after clearing every level")
	}
	if _, err := s.SubmitText("France"); !errors.Is(err, quiz.ErrQuizFinished) {
		t.Errorf("SubmitText() after finish error = %v, want ErrQuizFinished", err)
	}
	if err := s.Advance(); !errors.Is(err, quiz.ErrQuizFinished) {
		t.Errorf("Advance() after finish error = %v, want ErrQuizFinished", err)
	}
	if got := s.Accuracy(); got != 100 {
		t.Errorf("Accuracy() = %d for a perfect run, want 100", got)
	}

	s.Restart()
	if s.Finished() {
		t.Error("Finished() = true right after restart")
	}
	if got := s.Attempts(); got != 0 {
		t.Errorf("Attempts() = %d after restart, want 0", got)
	}
	if got := s.Correct(); got != 0 {
		t.Errorf("Correct() = %d after restart, want 0", got)
	}
	if got := s.Streak(); got != 0 {
		t.Errorf("Streak() = %d after restart, want 0", got)
	}
	if got := s.LevelIndex(); got != 0 {
		t.Errorf("LevelIndex() = %d after restart, want 0", got)
	}
	if got := s.TotalLevels(); got != 2 {
		t.Errorf("TotalLevels() = %d after restart, want 2", got)
	}
}

func TestSessionStreakAcrossLevels(t *testing.T) {
	s := newTestSession(2)

	clearLevel(t, s)
	if got := s.Streak(); got != 3 {
		t.Fatalf("Streak() = %d after a clean level, want 3", got)
	}

	if _, err := s.SubmitText("Atlantis"); err != nil {
		t.Fatalf("SubmitText() error = %v", err)
	}
	if got := s.Streak(); got != 0 {
		t.Errorf("Streak() = %d after a miss, want 0", got)
	}
	if got := s.BestStreak(); got != 3 {
		t.Errorf("BestStreak() = %d, want 3", got)
	}
}

func TestSessionAccuracy(t *testing.T) {
	s := newTestSession(4)

	if got := s.Accuracy(); got != 100 {
		t.Fatalf("Accuracy() = %d with no attempts, want 100", got)
	}

	c, _ := s.Current()
	s.SubmitText("wrong one")
	s.SubmitText("wrong two")
	s.SubmitText(c.Name)

	if got := s.Accuracy(); got != 33 {
		t.Errorf("Accuracy() = %d for 1/3, want 33", got)
	}

	s.SubmitText(c.Capital)
	if got := s.Accuracy(); got != 50 {
		t.Errorf("Accuracy() = %d for 2/4, want 50", got)
	}
}

func TestSessionSnapshot(t *testing.T) {
	s := newTestSession(3)
	clearLevel(t, s)
	c, _ := s.Current()
	s.SubmitText("miss")
	s.SubmitText(c.Name)

	snap := s.Snapshot(77)
	if snap.UserID != 77 {
		t.Errorf("UserID = %d, want 77", snap.UserID)
	}
	if snap.LevelsTotal != 3 {
		t.Errorf("LevelsTotal = %d, want 3", snap.LevelsTotal)
	}
	if snap.LevelsCleared != 1 {
		t.Errorf("LevelsCleared = %d, want 1", snap.LevelsCleared)
	}
	if snap.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", snap.Attempts)
	}
	if snap.Correct != 4 {
		t.Errorf("Correct = %d, want 4", snap.Correct)
	}
	if snap.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", snap.BestStreak)
	}
	if snap.Accuracy != 80 {
		t.Errorf("Accuracy = %d, want 80", snap.Accuracy)
	}
	if snap.StartedAt.IsZero() {
		t.Error("StartedAt is zero")
	}
}

func TestSessionSnapshotCountsLatchedLevel(t *testing.T) {
	s := newTestSession(2)

	c, _ := s.Current()
	s.SubmitText(c.Name)
	s.SubmitText(c.Capital)
	q, _ := s.GeoQuestion()
	s.SubmitChoice(q.CorrectIndex)

	// Geo answered but the advance timer has not fired yet.
	snap := s.Snapshot(1)
	if snap.LevelsCleared != 1 {
		t.Errorf("LevelsCleared = %d for a latched level, want 1", snap.LevelsCleared)
	}
}
