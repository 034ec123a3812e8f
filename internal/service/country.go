package service

import (
	"hash/fnv"
	"time"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// CountryService exposes the country dataset to the delivery layer.
type CountryService struct {
	repo CountryRepository
}

// NewCountryService creates a new country service.
func NewCountryService(repo CountryRepository) *CountryService {
	return &CountryService{repo: repo}
}

// All returns every country in the dataset.
func (s *CountryService) All() []entities.Country {
	return s.repo.All()
}

// GetByID returns the country with the given ISO numeric code.
func (s *CountryService) GetByID(id string) (entities.Country, error) {
	return s.repo.GetByID(id)
}

// ByContinent returns the countries of one continent, by display name.
func (s *CountryService) ByContinent(name string) []entities.Country {
	return s.repo.ByContinent(name)
}

// Count returns the dataset size.
func (s *CountryService) Count() int {
	return s.repo.Count()
}

// CountryOfDay picks the featured country for the given moment's UTC date.
// The pick is derived from the date alone, so every user sees the same
// country and no state has to be stored.
func (s *CountryService) CountryOfDay(now time.Time) (entities.Country, error) {
	all := s.repo.All()
	if len(all) == 0 {
		return entities.Country{}, ErrNoCountries
	}

	h := fnv.New32a()
	h.Write([]byte(now.UTC().Format("2006-01-02")))

	return all[int(h.Sum32()%uint32(len(all)))], nil
}
