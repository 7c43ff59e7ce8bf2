package timetables

import (
	"time"

	"github.com/busboard/busboard/pkg/gtfs"
	"github.com/rs/zerolog/log"
)

// ServiceActive reports whether a service runs on the given date.
// calendar_dates exceptions are authoritative: an exception dated on the
// query date decides the answer on its own and the weekly calendar is never
// consulted. Only when no exception matches does the weekly pattern apply -
// weekday flag first, then the inclusive start/end range. A service absent
// from both tables never runs.
func ServiceActive(index *gtfs.Index, serviceID string, date time.Time) bool {
	day := truncateToDay(date)

	for _, exception := range index.CalendarDatesByService[serviceID] {
		exceptionDate, err := time.Parse(gtfs.DateFormat, exception.Date)
		if err != nil {
			log.Warn().Str("service", serviceID).Str("date", exception.Date).Msg("Skipping unparseable calendar exception date")
			continue
		}

		if exceptionDate.Equal(day) {
			return exception.ExceptionType == gtfs.ExceptionAdded
		}
	}

	calendar, exists := index.CalendarsByService[serviceID]
	if !exists {
		return false
	}

	if !calendar.ActiveOn(day.Weekday()) {
		return false
	}

	startDate, err := time.Parse(gtfs.DateFormat, calendar.Start)
	if err != nil {
		return false
	}
	endDate, err := time.Parse(gtfs.DateFormat, calendar.End)
	if err != nil {
		return false
	}

	return !day.Before(startDate) && !day.After(endDate)
}

func truncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
