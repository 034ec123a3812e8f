package quiz

import (
	"math/rand"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// MaxPoolSize caps how many countries a single run visits, however
// large the dataset is.
const MaxPoolSize = 100

// BuildPool returns a shuffled copy of all, truncated to
// min(limit, len(all)). The source slice is never mutated. A limit
// outside 1..MaxPoolSize falls back to MaxPoolSize.
func BuildPool(all []entities.Country, rng *rand.Rand, limit int) []entities.Country {
	pool := append([]entities.Country(nil), all...)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if limit <= 0 || limit > MaxPoolSize {
		limit = MaxPoolSize
	}
	if limit < len(pool) {
		pool = pool[:limit]
	}
	return pool
}
