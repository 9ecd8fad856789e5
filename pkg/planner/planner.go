package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/skyhop/skyhop/pkg/airports"
)

// JourneyProvider plans candidate journeys from an origin coordinate to a
// destination location token. Implementations must be safe for concurrent
// use - the planner issues one call per airport in parallel.
type JourneyProvider interface {
	PlanJourneys(ctx context.Context, origin Coordinate, locationToken string, date string, time string) ([]Journey, error)
}

// StatusError is returned by a provider when it responds with a non-success
// HTTP status.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Code)
}

// Planner fans out journey queries to every airport in the registry and
// ranks the outcomes.
type Planner struct {
	Provider JourneyProvider
	Airports []airports.Airport
}

func NewPlanner(provider JourneyProvider) *Planner {
	return &Planner{
		Provider: provider,
		Airports: airports.Get(),
	}
}

// ComputeJourneys queries every airport concurrently and returns exactly one
// result per airport, fastest first with failed or undetermined results
// last. Individual airport failures are recorded on their result and never
// abort the batch - the only error returned here is cancellation of ctx, in
// which case no partial result is produced.
func (p *Planner) ComputeJourneys(ctx context.Context, origin Coordinate, date string, time string) ([]JourneyResult, error) {
	results := make([]JourneyResult, len(p.Airports))

	queries := pool.New()
	for index, airport := range p.Airports {
		index := index
		airport := airport

		queries.Go(func() {
			results[index] = p.queryDestination(ctx, origin, airport, date, time)
		})
	}
	queries.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fastest first, results without a duration sorted after every success.
	// Stable so that equal durations keep registry order.
	sort.SliceStable(results, func(i, j int) bool {
		a := results[i].DurationMinutes
		b := results[j].DurationMinutes

		if a == nil {
			return false
		}
		if b == nil {
			return true
		}

		return *a < *b
	})

	return results, nil
}

// queryDestination runs the query for a single airport. Every failure is
// converted into the result's Error field at this scope so it cannot affect
// sibling queries.
func (p *Planner) queryDestination(ctx context.Context, origin Coordinate, airport airports.Airport, date string, time string) JourneyResult {
	journeys, err := p.Provider.PlanJourneys(ctx, origin, airport.LocationToken, date, time)
	if err != nil {
		var statusError StatusError
		if errors.As(err, &statusError) {
			return errorResult(airport.Name, statusError.Error())
		}

		log.Error().Err(err).Str("airport", airport.Name).Msg("Journey query failed")
		return errorResult(airport.Name, fmt.Sprintf("error: %s", err))
	}

	// Track the strictly smallest duration - on a tie the earlier candidate
	// wins.
	best := -1
	for index, journey := range journeys {
		if best == -1 || journey.DurationMinutes < journeys[best].DurationMinutes {
			best = index
		}
	}

	if best == -1 {
		return noJourneyResult(airport.Name)
	}

	return successResult(airport.Name, journeys[best])
}
