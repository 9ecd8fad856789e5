package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const tflBaseURL = "https://api.tfl.gov.uk"

// TfLSource plans journeys with the Transport for London unified API. The
// underlying HTTP client is shared across concurrent queries.
type TfLSource struct {
	BaseURL string
	AppKey  string

	httpClient *http.Client
}

func NewTfLSource() *TfLSource {
	return &TfLSource{
		BaseURL:    tflBaseURL,
		AppKey:     os.Getenv("SKYHOP_TFL_APP_KEY"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *TfLSource) GetName() string {
	return "Transport for London Journey API"
}

func (s *TfLSource) PlanJourneys(ctx context.Context, origin Coordinate, locationToken string, date string, journeyTime string) ([]Journey, error) {
	originToken := fmt.Sprintf(
		"%s,%s",
		strconv.FormatFloat(origin.Latitude, 'f', -1, 64),
		strconv.FormatFloat(origin.Longitude, 'f', -1, 64),
	)

	requestURL := fmt.Sprintf(
		"%s/Journey/JourneyResults/%s/to/%s",
		s.BaseURL,
		url.PathEscape(originToken),
		url.PathEscape(locationToken),
	)

	queryValues := url.Values{}
	if s.AppKey != "" {
		queryValues.Set("app_key", s.AppKey)
	}
	if date != "" {
		queryValues.Set("date", date)
	}
	if journeyTime != "" {
		queryValues.Set("time", journeyTime)
		// Always plan for a departure at the requested time, never an
		// arrival by it
		queryValues.Set("timeIs", "Departing")
	}
	if len(queryValues) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, queryValues.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header["user-agent"] = []string{"curl/7.54.1"} // TfL is protected by cloudflare and it gets angry when no user agent is set

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, StatusError{Code: resp.StatusCode}
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var journeyResults tflJourneyResults
	if err := json.Unmarshal(jsonBytes, &journeyResults); err != nil {
		return nil, err
	}

	var journeys []Journey
	for _, journey := range journeyResults.Journeys {
		journeys = append(journeys, Journey{
			DurationMinutes: journey.Duration,
			Legs:            convertTfLLegs(journey.Legs),
		})
	}

	return journeys, nil
}

func convertTfLLegs(tflLegs []tflLeg) []Leg {
	var legs []Leg

	for _, tflLeg := range tflLegs {
		instruction := ""
		if tflLeg.Instruction != nil {
			instruction = tflLeg.Instruction.Summary
		}

		legs = append(legs, Leg{
			Mode:            NormalizeModeName(tflLeg.Mode.Name),
			DurationMinutes: tflLeg.Duration,
			From:            tflLeg.DeparturePoint.CommonName,
			To:              tflLeg.ArrivalPoint.CommonName,
			Instruction:     instruction,
			Path:            decodeLineString(tflLeg.Path),
		})
	}

	return legs
}

// decodeLineString parses the separately encoded "[[lat,lon],...]" payload
// TfL embeds in a leg. A malformed payload leaves the path empty - it never
// fails the leg.
func decodeLineString(path *tflPath) []Coordinate {
	if path == nil || path.LineString == "" {
		return nil
	}

	var points [][]float64
	if err := json.Unmarshal([]byte(path.LineString), &points); err != nil {
		log.Debug().Err(err).Msg("Failed to decode leg line string")
		return nil
	}

	var coordinates []Coordinate
	for _, point := range points {
		if len(point) < 2 {
			continue
		}

		coordinates = append(coordinates, Coordinate{
			Latitude:  point[0],
			Longitude: point[1],
		})
	}

	return coordinates
}

type tflJourneyResults struct {
	Journeys []tflJourney `json:"journeys"`
}

type tflJourney struct {
	Duration int      `json:"duration"`
	Legs     []tflLeg `json:"legs"`
}

type tflLeg struct {
	Duration       int             `json:"duration"`
	Instruction    *tflInstruction `json:"instruction"`
	DeparturePoint tflPoint        `json:"departurePoint"`
	ArrivalPoint   tflPoint        `json:"arrivalPoint"`
	Mode           tflMode         `json:"mode"`
	Path           *tflPath        `json:"path"`
}

type tflInstruction struct {
	Summary string `json:"summary"`
}

type tflPoint struct {
	CommonName string `json:"commonName"`
}

type tflMode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type tflPath struct {
	LineString string `json:"lineString"`
}
