package repository_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eldarkhamitov/country-quiz-bot/internal/repository"
)

func writeDataset(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "countries.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestNewCountryRepositoryCleansDataset(t *testing.T) {
	path := writeDataset(t, `{
		"countries": [
			{"name": "france", "capital": "paris", "continent": "EU", "iso_numeric": "250", "alpha2": "fr", "drive_side": "right"},
			{"name": "france again", "capital": "paris", "continent": "EU", "iso_numeric": "250", "alpha2": "fr", "drive_side": "right"},
			{"name": "nowhere", "capital": "none", "continent": "EU", "iso_numeric": "  ", "alpha2": "xx", "drive_side": "right"},
			{"name": "japan", "capital": "tokyo", "continent": "AS", "iso_numeric": "392", "alpha2": "jp", "landlocked": false, "drive_side": "left"}
		]
	}`)

	repo, err := repository.NewCountryRepository(path)
	if err != nil {
		t.Fatalf("NewCountryRepository() error = %v", err)
	}

	if got := repo.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2 (duplicate and missing-ISO rows dropped)", got)
	}

	france, err := repo.GetByID("250")
	if err != nil {
		t.Fatalf("GetByID(250) error = %v", err)
	}
	if france.Name != "France" {
		t.Errorf("Name = %q, want %q (first duplicate row wins)", france.Name, "France")
	}
	if france.Continent != "Europe" {
		t.Errorf("Continent = %q, want %q", france.Continent, "Europe")
	}
	if france.Alpha2 != "FR" {
		t.Errorf("Alpha2 = %q, want %q", france.Alpha2, "FR")
	}
}

func TestCountryRepositoryDisplayCasing(t *testing.T) {
	path := writeDataset(t, `{
		"countries": [
			{"name": "usa", "capital": "washington", "continent": "NA", "iso_numeric": "840", "alpha2": "us", "drive_side": "right"},
			{"name": "south africa", "capital": "cape town", "continent": "AF", "iso_numeric": "710", "alpha2": "za", "drive_side": "left"},
			{"name": "isle of man", "capital": "douglas", "continent": "EU", "iso_numeric": "833", "alpha2": "im", "drive_side": "left"}
		]
	}`)

	repo, err := repository.NewCountryRepository(path)
	if err != nil {
		t.Fatalf("NewCountryRepository() error = %v", err)
	}

	tests := []struct {
		id          string
		wantName    string
		wantCapital string
	}{
		{"840", "USA", "Washington"},
		{"710", "South Africa", "Cape Town"},
		// Short words are upper-cased wholesale, even particles.
		{"833", "Isle OF MAN", "Douglas"},
	}
	for _, tt := range tests {
		c, err := repo.GetByID(tt.id)
		if err != nil {
			t.Fatalf("GetByID(%s) error = %v", tt.id, err)
		}
		if c.Name != tt.wantName {
			t.Errorf("Name for %s = %q, want %q", tt.id, c.Name, tt.wantName)
		}
		if c.Capital != tt.wantCapital {
			t.Errorf("Capital for %s = %q, want %q", tt.id, c.Capital, tt.wantCapital)
		}
	}
}

func TestCountryRepositoryUnknownContinent(t *testing.T) {
	path := writeDataset(t, `{
		"countries": [
			{"name": "atlantis", "capital": "poseidonia", "continent": "XX", "iso_numeric": "999", "alpha2": "aa", "drive_side": "right"}
		]
	}`)

	repo, err := repository.NewCountryRepository(path)
	if err != nil {
		t.Fatalf("NewCountryRepository() error = %v", err)
	}

	c, err := repo.GetByID("999")
	if err != nil {
		t.Fatalf("GetByID(999) error = %v", err)
	}
	if c.Continent != "Unknown" {
		t.Errorf("Continent = %q for unmapped code, want %q", c.Continent, "Unknown")
	}
}

func TestCountryRepositoryByContinent(t *testing.T) {
	path := writeDataset(t, `{
		"countries": [
			{"name": "france", "capital": "paris", "continent": "EU", "iso_numeric": "250", "alpha2": "fr", "drive_side": "right"},
			{"name": "austria", "capital": "vienna", "continent": "EU", "iso_numeric": "040", "alpha2": "at", "landlocked": true, "drive_side": "right"},
			{"name": "japan", "capital": "tokyo", "continent": "AS", "iso_numeric": "392", "alpha2": "jp", "drive_side": "left"}
		]
	}`)

	repo, err := repository.NewCountryRepository(path)
	if err != nil {
		t.Fatalf("NewCountryRepository() error = %v", err)
	}

	if got := len(repo.ByContinent("europe")); got != 2 {
		t.Errorf("ByContinent(europe) returned %d countries, want 2", got)
	}
	if got := len(repo.ByContinent("Oceania")); got != 0 {
		t.Errorf("ByContinent(Oceania) returned %d countries, want 0", got)
	}
}

func TestCountryRepositoryNotFound(t *testing.T) {
	path := writeDataset(t, `{
		"countries": [
			{"name": "japan", "capital": "tokyo", "continent": "AS", "iso_numeric": "392", "alpha2": "jp", "drive_side": "left"}
		]
	}`)

	repo, err := repository.NewCountryRepository(path)
	if err != nil {
		t.Fatalf("NewCountryRepository() error = %v", err)
	}

	if _, err := repo.GetByID("000"); !errors.Is(err, repository.ErrCountryNotFound) {
		t.Errorf("GetByID(000) error = %v, want ErrCountryNotFound", err)
	}
}

func TestNewCountryRepositoryBadInput(t *testing.T) {
	if _, err := repository.NewCountryRepository(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("NewCountryRepository() with a missing file: want error, got nil")
	}

	malformed := writeDataset(t, `{"countries": [`)
	if _, err := repository.NewCountryRepository(malformed); err == nil {
		t.Error("NewCountryRepository() with malformed JSON: want error, got nil")
	}

	empty := writeDataset(t, `{"countries": [{"name": "x", "capital": "y", "continent": "EU", "iso_numeric": "", "alpha2": "xx", "drive_side": "right"}]}`)
	if _, err := repository.NewCountryRepository(empty); !errors.Is(err, repository.ErrEmptyDataset) {
		t.Errorf("NewCountryRepository() with no usable rows error = %v, want ErrEmptyDataset", err)
	}
}
