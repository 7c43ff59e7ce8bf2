package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

type Schedule struct {
	Stops         []Stop
	Routes        []Route
	Trips         []Trip
	StopTimes     []StopTime
	Calendars     []Calendar
	CalendarDates []CalendarDate
}

var requiredFiles = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}
var optionalFiles = []string{"calendar.txt", "calendar_dates.txt"}

func (gtfs *Schedule) ParseFile(reader io.Reader) error {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	fileMap := map[string]interface{}{
		"stops.txt":          &gtfs.Stops,
		"routes.txt":         &gtfs.Routes,
		"trips.txt":          &gtfs.Trips,
		"stop_times.txt":     &gtfs.StopTimes,
		"calendar.txt":       &gtfs.Calendars,
		"calendar_dates.txt": &gtfs.CalendarDates,
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return err
	}

	parsedFiles := map[string]bool{}
	for _, zipFile := range archive.File {
		fileName := zipFile.Name
		destination, exists := fileMap[fileName]
		if !exists {
			log.Debug().Str("file", fileName).Msg("Skipping unhandled gtfs file")
			continue
		}

		log.Info().Str("file", fileName).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", fileName, err)
		}

		contents, err := io.ReadAll(fileReader)
		fileReader.Close()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", fileName, err)
		}

		// Some feeds contain rogue byte sequences, drop them rather than fail the load
		contents = bytes.ToValidUTF8(contents, nil)

		if err := gocsv.UnmarshalBytes(contents, destination); err != nil {
			log.Error().Str("file", fileName).Err(err).Msg("Failed to parse csv file")
			return err
		}

		parsedFiles[fileName] = true
	}

	for _, fileName := range requiredFiles {
		if !parsedFiles[fileName] {
			return fmt.Errorf("gtfs archive is missing required file %s", fileName)
		}
	}
	for _, fileName := range optionalFiles {
		if !parsedFiles[fileName] {
			log.Warn().Str("file", fileName).Msg("Optional gtfs file not present, continuing without it")
		}
	}

	return nil
}
