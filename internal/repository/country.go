// Package repository provides access to the country dataset shipped
// with the bot. The dataset is loaded from JSON once at startup and
// served from memory.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrEmptyDataset    = errors.New("dataset contains no usable countries")
)

// rawCountry mirrors one row of the dataset file before cleanup.
type rawCountry struct {
	Name       string `json:"name"`
	Capital    string `json:"capital"`
	Continent  string `json:"continent"`
	ISONumeric string `json:"iso_numeric"`
	Alpha2     string `json:"alpha2"`
	Landlocked bool   `json:"landlocked"`
	DriveSide  string `json:"drive_side"`
}

// CountryRepository serves the cleaned country dataset.
type CountryRepository struct {
	countries []entities.Country
	byID      map[string]int
}

// NewCountryRepository loads the dataset file and cleans it up: rows
// without an ISO numeric code are dropped, duplicate codes keep the
// first row, names are display-cased and continent codes resolved.
func NewCountryRepository(path string) (*CountryRepository, error) {
	countries, err := loadCountries(path)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(countries))
	for i, c := range countries {
		byID[c.ID] = i
	}

	return &CountryRepository{
		countries: countries,
		byID:      byID,
	}, nil
}

// All returns every country in dataset order. Callers must not mutate
// the returned slice.
func (r *CountryRepository) All() []entities.Country {
	return r.countries
}

// GetByID retrieves a country by its ISO numeric code.
func (r *CountryRepository) GetByID(id string) (entities.Country, error) {
	i, ok := r.byID[id]
	if !ok {
		return entities.Country{}, ErrCountryNotFound
	}
	return r.countries[i], nil
}

// ByContinent returns the countries of one continent. The name is
// matched case-insensitively.
func (r *CountryRepository) ByContinent(name string) []entities.Country {
	var out []entities.Country
	for _, c := range r.countries {
		if strings.EqualFold(c.Continent, name) {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of countries in the cleaned dataset.
func (r *CountryRepository) Count() int {
	return len(r.countries)
}

func loadCountries(path string) ([]entities.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Countries []rawCountry `json:"countries"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal countries JSON: %w", err)
	}

	seen := make(map[string]struct{}, len(wrapper.Countries))
	countries := make([]entities.Country, 0, len(wrapper.Countries))
	for _, raw := range wrapper.Countries {
		id := strings.TrimSpace(raw.ISONumeric)
		if id == "" {
			continue
		}
		// First row wins on duplicate codes.
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		countries = append(countries, entities.Country{
			ID:         id,
			Name:       displayCase(raw.Name),
			Capital:    displayCase(raw.Capital),
			Continent:  entities.ContinentName(strings.TrimSpace(raw.Continent)),
			Alpha2:     strings.ToUpper(strings.TrimSpace(raw.Alpha2)),
			Landlocked: raw.Landlocked,
			DriveSide:  strings.ToLower(strings.TrimSpace(raw.DriveSide)),
		})
	}

	if len(countries) == 0 {
		return nil, ErrEmptyDataset
	}
	return countries, nil
}

// displayCase title-cases a dataset name. Words of up to three runes
// are fully upper-cased so acronym-like tokens read as "USA" or "UK";
// longer words get a capital first letter.
func displayCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		if len(runes) <= 3 {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
