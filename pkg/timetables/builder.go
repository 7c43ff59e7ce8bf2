package timetables

import (
	"slices"
	"sort"
	"time"

	"github.com/busboard/busboard/pkg/georegistry"
	"github.com/busboard/busboard/pkg/gtfs"
	"github.com/busboard/busboard/pkg/util"
	"github.com/rs/zerolog/log"
)

// Row is one scheduled arrival in a stop's generated timetable file
type Row struct {
	StopID    string `csv:"stop_id"`
	RouteName string `csv:"route_name"`
	Time      string `csv:"time"`
	Towards   string `csv:"towards"`
}

type candidateTrip struct {
	routeID   string
	serviceID string
	ambiguous bool
}

// BuildTimetable assembles the ordered arrival rows for one registry stop on
// a service date. A stop whose route list matches nothing, or whose matched
// routes have no active trips, yields no rows - that is a skip, not an error.
func BuildTimetable(stop georegistry.GeoStop, targetRoutes map[string]bool, index *gtfs.Index, date time.Time) []Row {
	matchingRoutes := MatchRoutes(stop.RouteList, targetRoutes, index.RoutesByID)
	if len(matchingRoutes) == 0 {
		log.Debug().Str("stop", stop.ID).Msg("No matching routes pass through a target stop")
		return nil
	}

	// A trip id claimed by more than one matched route cannot be attributed
	// to a single route, so its records are rejected rather than guessed at
	candidateTrips := map[string]candidateTrip{}
	for _, routeID := range matchingRoutes {
		for _, trip := range index.TripsByRoute[routeID] {
			if existing, exists := candidateTrips[trip.ID]; exists && existing.routeID != routeID {
				existing.ambiguous = true
				candidateTrips[trip.ID] = existing
				log.Warn().Str("trip", trip.ID).Str("stop", stop.ID).Msg("Trip claimed by multiple matched routes, rejecting its records")
				continue
			}
			candidateTrips[trip.ID] = candidateTrip{routeID: routeID, serviceID: trip.ServiceID}
		}
	}

	stopTimes := slices.Clone(index.StopTimesByStop[stop.ID])
	util.InPlaceFilter(&stopTimes, func(stopTime gtfs.StopTime) bool {
		candidate, exists := candidateTrips[stopTime.TripID]
		return exists && !candidate.ambiguous && ServiceActive(index, candidate.serviceID, date)
	})

	type timedRow struct {
		row            Row
		arrivalSeconds int
	}
	var entries []timedRow

	for _, stopTime := range stopTimes {
		arrivalSeconds, err := ParseFeedTime(stopTime.ArrivalTime)
		if err != nil {
			log.Warn().Str("trip", stopTime.TripID).Err(err).Msg("Skipping stop time with bad arrival time")
			continue
		}
		if _, err := ParseFeedTime(stopTime.DepartureTime); err != nil {
			log.Warn().Str("trip", stopTime.TripID).Err(err).Msg("Skipping stop time with bad departure time")
			continue
		}

		route := index.RoutesByID[candidateTrips[stopTime.TripID].routeID]

		entries = append(entries, timedRow{
			row: Row{
				StopID:    stop.ID,
				RouteName: route.ShortName,
				Time:      FormatClockTime(arrivalSeconds),
				Towards:   stop.Towards,
			},
			arrivalSeconds: arrivalSeconds,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].arrivalSeconds < entries[j].arrivalSeconds
	})

	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, entry.row)
	}

	return rows
}
