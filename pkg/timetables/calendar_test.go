package timetables

import (
	"testing"
	"time"

	"github.com/busboard/busboard/pkg/gtfs"
	"github.com/stretchr/testify/assert"
)

var weekdayCalendar = gtfs.Calendar{
	ServiceID: "WKDAY",
	Monday:    1,
	Tuesday:   1,
	Wednesday: 1,
	Thursday:  1,
	Friday:    1,
	Start:     "20240101",
	End:       "20241231",
}

func calendarIndex(calendars []gtfs.Calendar, calendarDates []gtfs.CalendarDate) *gtfs.Index {
	schedule := &gtfs.Schedule{Calendars: calendars, CalendarDates: calendarDates}
	return schedule.Index()
}

func TestServiceActiveOnWeekday(t *testing.T) {
	index := calendarIndex([]gtfs.Calendar{weekdayCalendar}, nil)

	tuesday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, ServiceActive(index, "WKDAY", tuesday))
}

func TestServiceInactiveOnWeekend(t *testing.T) {
	index := calendarIndex([]gtfs.Calendar{weekdayCalendar}, nil)

	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.False(t, ServiceActive(index, "WKDAY", sunday))
}

func TestServiceInactiveOutsideDateRange(t *testing.T) {
	index := calendarIndex([]gtfs.Calendar{weekdayCalendar}, nil)

	// A Tuesday, but the year after the calendar ends
	tuesday := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.False(t, ServiceActive(index, "WKDAY", tuesday))
}

func TestServiceActiveOnRangeBoundaries(t *testing.T) {
	index := calendarIndex([]gtfs.Calendar{weekdayCalendar}, nil)

	startMonday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endTuesday := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, ServiceActive(index, "WKDAY", startMonday))
	assert.True(t, ServiceActive(index, "WKDAY", endTuesday))
}

func TestExceptionRemovedOverridesCalendar(t *testing.T) {
	index := calendarIndex(
		[]gtfs.Calendar{weekdayCalendar},
		[]gtfs.CalendarDate{{ServiceID: "WKDAY", Date: "20240102", ExceptionType: gtfs.ExceptionRemoved}},
	)

	tuesday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.False(t, ServiceActive(index, "WKDAY", tuesday))
}

func TestExceptionAddedOverridesCalendar(t *testing.T) {
	index := calendarIndex(
		[]gtfs.Calendar{weekdayCalendar},
		[]gtfs.CalendarDate{{ServiceID: "WKDAY", Date: "20240107", ExceptionType: gtfs.ExceptionAdded}},
	)

	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, ServiceActive(index, "WKDAY", sunday))
}

func TestExceptionOnOtherDateFallsThroughToCalendar(t *testing.T) {
	index := calendarIndex(
		[]gtfs.Calendar{weekdayCalendar},
		[]gtfs.CalendarDate{{ServiceID: "WKDAY", Date: "20240109", ExceptionType: gtfs.ExceptionRemoved}},
	)

	tuesday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, ServiceActive(index, "WKDAY", tuesday))
}

func TestExceptionOnlyServiceRunsOnlyOnItsDates(t *testing.T) {
	index := calendarIndex(nil, []gtfs.CalendarDate{
		{ServiceID: "SPECIAL", Date: "20240115", ExceptionType: gtfs.ExceptionAdded},
	})

	assert.True(t, ServiceActive(index, "SPECIAL", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ServiceActive(index, "SPECIAL", time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)))
}

func TestUnknownServiceNeverActive(t *testing.T) {
	index := calendarIndex([]gtfs.Calendar{weekdayCalendar}, nil)

	tuesday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.False(t, ServiceActive(index, "GHOST", tuesday))
}

func TestServiceActiveIgnoresTimeOfDay(t *testing.T) {
	index := calendarIndex([]gtfs.Calendar{weekdayCalendar}, nil)

	lateTuesday := time.Date(2024, 1, 2, 23, 45, 0, 0, time.UTC)
	assert.True(t, ServiceActive(index, "WKDAY", lateTuesday))
}
