// Package entities contains domain entities used across the application.
package entities

// Drive sides a country can use. Values match the dataset file.
const (
	DriveSideLeft  = "left"
	DriveSideRight = "right"
)

// Country represents a single country from the quiz dataset.
// The ISO 3166-1 numeric code is the canonical identity; name, capital
// and continent are already display-cased by the repository at load time.
type Country struct {
	ID         string // ISO 3166-1 numeric code, e.g. "250"
	Name       string // display name, e.g. "France"
	Capital    string // capital city, e.g. "Paris"
	Continent  string // continent display name, e.g. "Europe"
	Alpha2     string // ISO 3166-1 alpha-2 code, upper-case, may be empty
	Landlocked bool
	DriveSide  string // DriveSideLeft or DriveSideRight
}

// continentNames maps dataset continent codes to display names.
var continentNames = map[string]string{
	"AF": "Africa",
	"AN": "Antarctica",
	"AS": "Asia",
	"EU": "Europe",
	"NA": "North America",
	"OC": "Oceania",
	"SA": "South America",
}

// ContinentName resolves a two-letter continent code to its display name.
// Unknown codes resolve to "Unknown".
func ContinentName(code string) string {
	if name, ok := continentNames[code]; ok {
		return name
	}
	return "Unknown"
}

// Continents returns the seven continent display names in a fixed order.
func Continents() []string {
	return []string{
		"Africa",
		"Antarctica",
		"Asia",
		"Europe",
		"North America",
		"Oceania",
		"South America",
	}
}
