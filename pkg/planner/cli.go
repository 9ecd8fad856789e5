package planner

import (
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/skyhop/skyhop/pkg/airports"
	"github.com/skyhop/skyhop/pkg/postcodes"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Journey planner tools",
		Subcommands: []*cli.Command{
			{
				Name:  "lookup",
				Usage: "rank the fastest journey to every airport from a postcode",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "postcode",
						Usage:    "origin postcode",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "travel date (yyyyMMdd)",
					},
					&cli.StringFlag{
						Name:  "time",
						Usage: "departure time (HHmm)",
					},
				},
				Action: func(c *cli.Context) error {
					airports.Load()

					resolved, err := postcodes.NewResolver().Resolve(c.Context, c.String("postcode"))
					if err != nil {
						return err
					}

					origin := Coordinate{
						Latitude:  resolved.Latitude,
						Longitude: resolved.Longitude,
					}

					results, err := NewPlanner(NewTfLSource()).ComputeJourneys(c.Context, origin, c.String("date"), c.String("time"))
					if err != nil {
						return err
					}

					pretty.Println(results)

					return nil
				},
			},
		},
	}
}
