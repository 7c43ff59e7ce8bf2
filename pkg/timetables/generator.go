package timetables

import (
	"fmt"
	"os"
	"time"

	"github.com/busboard/busboard/pkg/georegistry"
	"github.com/busboard/busboard/pkg/gtfs"
	"github.com/rs/zerolog/log"
)

type GenerateOptions struct {
	GTFSPath    string
	StopsPath   string
	OutputDir   string
	Date        time.Time
	TargetStops []string
}

// Generate runs the whole batch: load both datasets, resolve the target
// route set, emit one timetable file per registry stop that has active
// trips on the date, then write the summary. A failure on one stop is
// logged and the loop moves on - only an unusable feed aborts the run.
func Generate(options GenerateOptions) error {
	stops, err := georegistry.LoadRegistry(options.StopsPath)
	if err != nil {
		return fmt.Errorf("failed to load stop registry: %w", err)
	}

	feedFile, err := os.Open(options.GTFSPath)
	if err != nil {
		return fmt.Errorf("failed to open gtfs archive: %w", err)
	}
	defer feedFile.Close()

	schedule := &gtfs.Schedule{}
	if err := schedule.ParseFile(feedFile); err != nil {
		return fmt.Errorf("failed to parse gtfs archive: %w", err)
	}

	index := schedule.Index()
	log.Info().
		Int("stops", len(schedule.Stops)).
		Int("routes", len(schedule.Routes)).
		Int("trips", len(schedule.Trips)).
		Int("stoptimes", len(schedule.StopTimes)).
		Msg("Loaded gtfs schedule")

	targetRoutes := georegistry.TargetRoutes(stops, options.TargetStops)

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	generated := 0
	for _, stop := range stops {
		rows := BuildTimetable(stop, targetRoutes, index, options.Date)
		if len(rows) == 0 {
			// A file left over from a previous run would be counted by the
			// summary, so drop it
			if err := os.Remove(timetableFilename(options.OutputDir, stop.ID)); err == nil {
				log.Info().Str("stop", stop.ID).Msg("Removed stale timetable file")
			}
			log.Debug().Str("stop", stop.ID).Str("name", stop.Name).Msg("No active trips for stop")
			continue
		}

		filename, err := WriteStopTimetable(options.OutputDir, stop.ID, rows)
		if err != nil {
			log.Error().Str("stop", stop.ID).Err(err).Msg("Failed to write timetable for stop")
			continue
		}

		generated += 1
		log.Info().Str("file", filename).Int("trips", len(rows)).Msg("Generated timetable")
	}

	if err := WriteSummary(options.OutputDir, stops); err != nil {
		return err
	}

	log.Info().Int("stops", len(stops)).Int("timetables", generated).Msg("Timetable generation complete")

	return nil
}
