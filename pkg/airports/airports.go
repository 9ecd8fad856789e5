package airports

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Airport is a destination the journey planner can be asked to reach. The
// LocationToken is opaque at this level - it is whatever the provider accepts
// as an arrival point, either a "lat,lon" pair or a provider stop code.
type Airport struct {
	Name          string `json:"name" yaml:"name" groups:"basic"`
	LocationToken string `json:"location_token" yaml:"location_token" groups:"basic"`
}

var defaultAirports = []Airport{
	{Name: "Heathrow", LocationToken: "51.4700,-0.4543"},
	{Name: "Gatwick", LocationToken: "51.1537,-0.1821"},
	{Name: "Stansted", LocationToken: "51.8860,0.2389"},
	{Name: "Luton", LocationToken: "51.8763,-0.3717"},
	{Name: "London City", LocationToken: "51.5048,0.0495"},
	{Name: "Southend", LocationToken: "51.5714,0.6956"},
}

var registry = defaultAirports

// Load replaces the default registry with the contents of the YAML file
// referenced by SKYHOP_AIRPORTS_FILE. Runs once at startup - the registry
// never changes after that.
func Load() {
	filename := os.Getenv("SKYHOP_AIRPORTS_FILE")
	if filename == "" {
		return
	}

	yamlBytes, err := os.ReadFile(filename)
	if err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("Failed to read airports file")
	}

	var fileAirports []Airport
	if err := yaml.Unmarshal(yamlBytes, &fileAirports); err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("Failed to parse airports file")
	}

	if len(fileAirports) == 0 {
		log.Fatal().Str("file", filename).Msg("Airports file contains no airports")
	}

	registry = fileAirports
	log.Info().Int("count", len(registry)).Str("file", filename).Msg("Loaded airports")
}

// Get returns the ordered registry of destination airports.
func Get() []Airport {
	return registry
}

// Find returns the airport with the given name, case insensitively.
func Find(name string) (Airport, bool) {
	index := slices.IndexFunc(registry, func(airport Airport) bool {
		return strings.EqualFold(airport.Name, name)
	})

	if index == -1 {
		return Airport{}, false
	}

	return registry[index], true
}
