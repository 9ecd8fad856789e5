package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyhop/skyhop/pkg/airports"
)

func AirportsRouter(router fiber.Router) {
	router.Get("/", listAirports)
	router.Get("/:name", getAirport)
}

func listAirports(c *fiber.Ctx) error {
	return c.JSON(airports.Get())
}

func getAirport(c *fiber.Ctx) error {
	airport, found := airports.Find(c.Params("name"))

	if !found {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Airport does not exist",
		})
	}

	return c.JSON(airport)
}
