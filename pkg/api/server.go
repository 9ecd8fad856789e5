package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyhop/skyhop/pkg/api/routes"
	"github.com/skyhop/skyhop/pkg/planner"
	"github.com/skyhop/skyhop/pkg/postcodes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.AirportsRouter(group.Group("/airports"))

	journeyPlanner := planner.NewPlanner(planner.NewTfLSource())
	routes.JourneysRouter(group.Group("/journeys"), journeyPlanner, postcodes.NewResolver())

	return webApp.Listen(listen)
}
