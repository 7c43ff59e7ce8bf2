package timetables

import (
	"sort"
	"strings"

	"github.com/busboard/busboard/pkg/gtfs"
	"golang.org/x/exp/maps"
)

// MatchRoutes cross references the registry's route names against the GTFS
// route records. The two datasets use independently maintained naming
// conventions so a record matches a registry name when any of:
//   - the name equals the route's short name
//   - the name occurs inside the route's long name
//   - the route's short name occurs inside the name
//
// The first registry name to match a route wins for that route, and its
// identifier is kept only when the matched name is also in targetRoutes -
// that gate keeps name collisions from pulling in routes that never reach
// the corridor. Returned identifiers are sorted for deterministic output.
func MatchRoutes(geoRouteNames []string, targetRoutes map[string]bool, routes map[string]gtfs.Route) []string {
	var matchingRoutes []string

	routeIDs := maps.Keys(routes)
	sort.Strings(routeIDs)

	for _, routeID := range routeIDs {
		route := routes[routeID]

		for _, geoRouteName := range geoRouteNames {
			if geoRouteName == route.ShortName ||
				strings.Contains(route.LongName, geoRouteName) ||
				strings.Contains(geoRouteName, route.ShortName) {
				if targetRoutes[geoRouteName] {
					matchingRoutes = append(matchingRoutes, route.ID)
				}
				break
			}
		}
	}

	return matchingRoutes
}
