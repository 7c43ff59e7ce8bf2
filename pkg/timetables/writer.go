package timetables

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/busboard/busboard/pkg/georegistry"
	"github.com/busboard/busboard/pkg/util"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// SummaryRow is one line of the run-wide summary file. Stops that produced
// no timetable file keep zero counts.
type SummaryRow struct {
	StopID     string `csv:"stop_id"`
	StopName   string `csv:"stop_name"`
	Towards    string `csv:"towards"`
	RouteCount int    `csv:"route_count"`
	TripCount  int    `csv:"trip_count"`
}

func timetableFilename(outputDir string, stopID string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s-timetable.csv", stopID))
}

// WriteStopTimetable writes one stop's rows as a headered CSV, replacing any
// previous file for that stop.
func WriteStopTimetable(outputDir string, stopID string, rows []Row) (string, error) {
	filename := timetableFilename(outputDir, stopID)

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create timetable file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("failed to write timetable file: %w", err)
	}

	return filename, nil
}

// WriteSummary re-reads the generated per-stop files and writes one summary
// row per registry stop - the counts come from the files themselves so the
// summary always reflects what was actually emitted.
func WriteSummary(outputDir string, stops []georegistry.GeoStop) error {
	summary := make([]SummaryRow, 0, len(stops))

	for _, stop := range stops {
		row := SummaryRow{
			StopID:   stop.ID,
			StopName: stop.Name,
			Towards:  stop.Towards,
		}

		file, err := os.Open(timetableFilename(outputDir, stop.ID))
		if err != nil && !os.IsNotExist(err) {
			log.Warn().Str("stop", stop.ID).Err(err).Msg("Failed to open timetable file for summary")
		}
		if err == nil {
			var rows []Row
			err = gocsv.UnmarshalFile(file, &rows)
			file.Close()

			if err != nil {
				log.Warn().Str("stop", stop.ID).Err(err).Msg("Failed to read back timetable file for summary")
			} else {
				var routeNames []string
				for _, timetableRow := range rows {
					routeNames = append(routeNames, timetableRow.RouteName)
				}

				row.RouteCount = len(util.RemoveDuplicateStrings(routeNames, []string{}))
				row.TripCount = len(rows)
			}
		}

		summary = append(summary, row)
	}

	summaryFile, err := os.Create(filepath.Join(outputDir, "timetables-summary.csv"))
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer summaryFile.Close()

	if err := gocsv.MarshalFile(&summary, summaryFile); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	log.Info().Str("file", summaryFile.Name()).Msg("Generated summary")

	return nil
}
