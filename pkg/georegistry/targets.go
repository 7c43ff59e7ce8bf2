package georegistry

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// IsTargetStop reports whether a stop display name contains any of the
// configured target names, case-insensitively.
func IsTargetStop(stopName string, targetNames []string) bool {
	for _, targetName := range targetNames {
		if strings.Contains(strings.ToLower(stopName), strings.ToLower(targetName)) {
			return true
		}
	}

	return false
}

// TargetRoutes returns the union of route names declared by every stop whose
// name matches one of the target names. These are the routes verified to
// reach the corridor of interest.
func TargetRoutes(stops []GeoStop, targetNames []string) map[string]bool {
	targetRoutes := map[string]bool{}

	for _, stop := range stops {
		if !IsTargetStop(stop.Name, targetNames) {
			continue
		}

		log.Info().Str("stop", stop.Name).Msg("Found target stop")

		for _, routeName := range stop.RouteList {
			targetRoutes[routeName] = true
		}
	}

	log.Info().Int("length", len(targetRoutes)).Msg("Resolved routes passing through target stops")

	return targetRoutes
}
