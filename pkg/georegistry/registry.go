package georegistry

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// GeoStop is a curated physical stop location from the corridor registry.
// RouteList carries the route names the registry believes serve the stop -
// these are loosely correlated with the GTFS route records, not foreign keys.
type GeoStop struct {
	ID        string
	Name      string
	RouteList []string
	Towards   string
	Longitude float64
	Latitude  float64
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties struct {
		ID        any    `json:"id"`
		Name      string `json:"name"`
		RouteList string `json:"route_list"`
		Towards   string `json:"towards"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

// LoadRegistry reads a GeoJSON FeatureCollection of stops. The route_list
// property is itself a JSON encoded string array; a stop whose route_list
// fails to parse keeps an empty list rather than failing the whole load.
func LoadRegistry(path string) ([]GeoStop, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop registry: %w", err)
	}

	var collection featureCollection
	if err := json.Unmarshal(contents, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse stop registry: %w", err)
	}

	stops := make([]GeoStop, 0, len(collection.Features))
	for _, feature := range collection.Features {
		stop := GeoStop{
			ID:      propertyString(feature.Properties.ID),
			Name:    feature.Properties.Name,
			Towards: feature.Properties.Towards,
		}

		if feature.Properties.RouteList != "" {
			if err := json.Unmarshal([]byte(feature.Properties.RouteList), &stop.RouteList); err != nil {
				log.Warn().Str("stop", stop.ID).Err(err).Msg("Failed to parse route_list, stop will have no timetable")
				stop.RouteList = nil
			}
		}

		if len(feature.Geometry.Coordinates) >= 2 {
			stop.Longitude = feature.Geometry.Coordinates[0]
			stop.Latitude = feature.Geometry.Coordinates[1]
		}

		stops = append(stops, stop)
	}

	log.Info().Int("length", len(stops)).Msg("Loaded geo stop registry")

	return stops, nil
}

// Registry identifiers turn up as either strings or bare numbers in the wild
func propertyString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}
