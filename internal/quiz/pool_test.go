package quiz_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

func makeCountries(n int) []entities.Country {
	countries := make([]entities.Country, n)
	for i := range countries {
		countries[i] = entities.Country{
			ID:   strconv.Itoa(i + 1),
			Name: "Country " + strconv.Itoa(i+1),
		}
	}
	return countries
}

func TestBuildPoolSize(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"limit below total", 50, 10, 10},
		{"limit above total", 5, 10, 5},
		{"zero limit falls back to cap", 150, 0, 100},
		{"limit above cap falls back to cap", 150, 500, 100},
		{"small dataset under cap", 7, 100, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			pool := quiz.BuildPool(makeCountries(tt.total), rng, tt.limit)
			if len(pool) != tt.want {
				t.Errorf("pool size = %d, want %d", len(pool), tt.want)
			}
		})
	}
}

func TestBuildPoolUniqueEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := quiz.BuildPool(makeCountries(120), rng, 100)

	seen := make(map[string]bool, len(pool))
	for _, c := range pool {
		if seen[c.ID] {
			t.Fatalf("country %s appears twice in the pool", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestBuildPoolDoesNotMutateSource(t *testing.T) {
	source := makeCountries(30)
	rng := rand.New(rand.NewSource(7))
	quiz.BuildPool(source, rng, 10)

	for i, c := range source {
		if want := strconv.Itoa(i + 1); c.ID != want {
			t.Fatalf("source[%d].ID = %s, want %s; source slice was mutated", i, c.ID, want)
		}
	}
}

func TestBuildPoolSeedReproducible(t *testing.T) {
	source := makeCountries(40)

	first := quiz.BuildPool(source, rand.New(rand.NewSource(99)), 40)
	second := quiz.BuildPool(source, rand.New(rand.NewSource(99)), 40)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different orders at index %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
