package quiz_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

func TestHintCountryStep(t *testing.T) {
	s := newTestSession(4)
	c, _ := s.Current()

	hint := s.Hint()
	if hint == "" {
		t.Fatal("Hint() returned empty hint for country step")
	}
	if !strings.Contains(hint, "'"+c.Name[:1]+"'") {
		t.Errorf("Hint() = %q, want first letter %q", hint, c.Name[:1])
	}
	if !strings.Contains(hint, c.Continent) {
		t.Errorf("Hint() = %q, want continent %q", hint, c.Continent)
	}
	if strings.Contains(quiz.Normalize(hint), quiz.Normalize(c.Name)) {
		t.Errorf("Hint() = %q names the answer %q", hint, c.Name)
	}
}

func TestHintCapitalStep(t *testing.T) {
	s := newTestSession(4)
	c, _ := s.Current()
	s.SubmitText(c.Name)

	hint := s.Hint()
	if !strings.Contains(hint, "capital") {
		t.Errorf("Hint() = %q, want a capital hint", hint)
	}
	if strings.Contains(quiz.Normalize(hint), quiz.Normalize(c.Capital)) {
		t.Errorf("Hint() = %q names the answer %q", hint, c.Capital)
	}
}

func TestHintGeoStepNeverNamesAnswer(t *testing.T) {
	// Across seeds both geo templates and both fact values come up.
	for seed := int64(0); seed < 8; seed++ {
		s := quiz.NewSession(testCountries(), rand.New(rand.NewSource(seed)), 4)
		c, _ := s.Current()
		s.SubmitText(c.Name)
		s.SubmitText(c.Capital)

		q, err := s.GeoQuestion()
		if err != nil {
			t.Fatalf("seed %d: GeoQuestion() error = %v", seed, err)
		}

		hint := s.Hint()
		if hint == "" {
			t.Fatalf("seed %d: empty geo hint", seed)
		}
		answer := q.Choices[q.CorrectIndex]
		if strings.Contains(quiz.Normalize(hint), quiz.Normalize(answer)) {
			t.Errorf("seed %d: hint %q contains the answer %q", seed, hint, answer)
		}
	}
}

func TestHintFinishedRun(t *testing.T) {
	s := newTestSession(1)
	clearLevel(t, s)

	if got := s.Hint(); got != "" {
		t.Errorf("Hint() = %q for a finished run, want empty", got)
	}
}
