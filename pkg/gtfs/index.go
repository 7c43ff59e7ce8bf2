package gtfs

// Index holds the parsed schedule keyed by the identifiers the timetable
// generation path looks things up with. All maps are read-only once built.
type Index struct {
	StopsByID              map[string]Stop
	RoutesByID             map[string]Route
	TripsByRoute           map[string][]Trip
	StopTimesByStop        map[string][]StopTime
	CalendarsByService     map[string]Calendar
	CalendarDatesByService map[string][]CalendarDate
}

func (gtfs *Schedule) Index() *Index {
	index := &Index{
		StopsByID:              map[string]Stop{},
		RoutesByID:             map[string]Route{},
		TripsByRoute:           map[string][]Trip{},
		StopTimesByStop:        map[string][]StopTime{},
		CalendarsByService:     map[string]Calendar{},
		CalendarDatesByService: map[string][]CalendarDate{},
	}

	for _, stop := range gtfs.Stops {
		index.StopsByID[stop.ID] = stop
	}
	for _, route := range gtfs.Routes {
		index.RoutesByID[route.ID] = route
	}
	for _, trip := range gtfs.Trips {
		index.TripsByRoute[trip.RouteID] = append(index.TripsByRoute[trip.RouteID], trip)
	}
	for _, stopTime := range gtfs.StopTimes {
		index.StopTimesByStop[stopTime.StopID] = append(index.StopTimesByStop[stopTime.StopID], stopTime)
	}
	for _, calendar := range gtfs.Calendars {
		index.CalendarsByService[calendar.ServiceID] = calendar
	}
	for _, calendarDate := range gtfs.CalendarDates {
		index.CalendarDatesByService[calendarDate.ServiceID] = append(index.CalendarDatesByService[calendarDate.ServiceID], calendarDate)
	}

	return index
}
