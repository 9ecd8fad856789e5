package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/skyhop/skyhop/pkg/planner"
	"github.com/skyhop/skyhop/pkg/postcodes"
)

func JourneysRouter(router fiber.Router, journeyPlanner *planner.Planner, resolver *postcodes.Resolver) {
	router.Get("/:postcode", func(c *fiber.Ctx) error {
		return getJourneysFromPostcode(c, journeyPlanner, resolver)
	})
}

func getJourneysFromPostcode(c *fiber.Ctx, journeyPlanner *planner.Planner, resolver *postcodes.Resolver) error {
	postcode := c.Params("postcode")
	date := c.Query("date")
	journeyTime := c.Query("time")
	detailed := c.QueryBool("detailed", false)

	resolved, err := resolver.Resolve(c.Context(), postcode)
	if err != nil {
		if errors.Is(err, postcodes.ErrNotFound) {
			c.SendStatus(fiber.StatusNotFound)
		} else {
			c.SendStatus(fiber.StatusBadGateway)
		}

		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	origin := planner.Coordinate{
		Latitude:  resolved.Latitude,
		Longitude: resolved.Longitude,
	}

	results, err := journeyPlanner.ComputeJourneys(c.Context(), origin, date, journeyTime)
	if err != nil {
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// The basic group leaves out the per-leg path geometry
	marshalGroups := []string{"basic"}
	if detailed {
		marshalGroups = append(marshalGroups, "detailed")
	}

	resultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: marshalGroups,
	}, results)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce journey results",
		})
	}

	return c.JSON(resultsReduced)
}
