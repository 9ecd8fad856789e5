package planner

import (
	"strings"
	"unicode"

	"github.com/skyhop/skyhop/pkg/util"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
}

// Leg is a single segment of an itinerary. Path is the polyline the leg
// follows and may be empty when the provider supplied no geometry.
type Leg struct {
	Mode            string       `json:"mode" groups:"basic"`
	DurationMinutes int          `json:"duration_minutes" groups:"basic"`
	From            string       `json:"from" groups:"basic"`
	To              string       `json:"to" groups:"basic"`
	Instruction     string       `json:"instruction,omitempty" groups:"basic"`
	Path            []Coordinate `json:"path,omitempty" groups:"detailed"`
}

// Journey is one candidate itinerary returned by a provider.
type Journey struct {
	DurationMinutes int
	Legs            []Leg
}

// JourneyResult is the outcome for a single destination. Either the journey
// fields or Error is set, never both - a destination cannot partially
// succeed. A result with no duration and no error means the provider found
// no journey at all.
type JourneyResult struct {
	DestinationName string `json:"destination_name" groups:"basic"`
	DurationMinutes *int   `json:"duration_minutes,omitempty" groups:"basic"`
	Summary         string `json:"summary" groups:"basic"`
	Legs            []Leg  `json:"legs,omitempty" groups:"basic"`
	Error           string `json:"error,omitempty" groups:"basic"`
}

func successResult(destinationName string, journey Journey) JourneyResult {
	duration := journey.DurationMinutes

	return JourneyResult{
		DestinationName: destinationName,
		DurationMinutes: &duration,
		Summary:         summariseLegs(journey.Legs),
		Legs:            journey.Legs,
	}
}

func noJourneyResult(destinationName string) JourneyResult {
	return JourneyResult{
		DestinationName: destinationName,
	}
}

func errorResult(destinationName string, message string) JourneyResult {
	return JourneyResult{
		DestinationName: destinationName,
		Error:           message,
	}
}

// NormalizeModeName turns a provider mode identifier such as "national-rail"
// into a display name ("National rail"). Empty strings stay empty.
func NormalizeModeName(mode string) string {
	if mode == "" {
		return ""
	}

	runes := []rune(strings.ReplaceAll(mode, "-", " "))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// summariseLegs builds the display summary for an itinerary - the leg modes
// de-duplicated in first occurrence order, joined with an arrow.
func summariseLegs(legs []Leg) string {
	var modes []string
	for _, leg := range legs {
		modes = append(modes, leg.Mode)
	}

	return strings.Join(util.RemoveDuplicateStrings(modes), " → ")
}
