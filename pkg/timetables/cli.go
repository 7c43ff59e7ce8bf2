package timetables

import (
	"fmt"
	"os"
	"time"

	"github.com/busboard/busboard/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "timetables",
		Usage: "Generate per-stop timetable files from a static schedule",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate timetable CSVs for every registry stop",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "gtfs",
						Usage:    "Path to the GTFS schedule zip",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "stops",
						Usage:    "Path to the stop registry GeoJSON",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Output directory for the timetable files",
						Value: "static/timetables",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Service date as 2006-01-02, defaults to today",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a YAML config file overriding the built-in target stops",
					},
				},
				Action: func(c *cli.Context) error {
					loadedConfig, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					date := time.Now()
					if c.String("date") != "" {
						date, err = time.Parse("2006-01-02", c.String("date"))
						if err != nil {
							return fmt.Errorf("invalid date %q: %w", c.String("date"), err)
						}
					}

					for _, path := range []string{c.String("gtfs"), c.String("stops")} {
						if _, err := os.Stat(path); err != nil {
							return fmt.Errorf("input file not found: %s", path)
						}
					}

					return Generate(GenerateOptions{
						GTFSPath:    c.String("gtfs"),
						StopsPath:   c.String("stops"),
						OutputDir:   c.String("output"),
						Date:        date,
						TargetStops: loadedConfig.TargetStops,
					})
				},
			},
		},
	}
}
