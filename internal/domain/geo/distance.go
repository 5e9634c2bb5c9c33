// Package geo implements great-circle geometry for safe zones.
package geo

import (
	"math"

	"safezone/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used for haversine distances.
// orb's own helpers use the equatorial radius, so distances are computed here.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between a and b.
func DistanceMeters(a, b entity.Coordinate) float64 {
	phi1 := toRadians(a.Latitude)
	phi2 := toRadians(b.Latitude)
	dPhi := toRadians(b.Latitude - a.Latitude)
	dLambda := toRadians(b.Longitude - a.Longitude)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Rounding can push h just past 1 for antipodal points.
	h = math.Min(math.Max(h, 0), 1)

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Within reports whether p lies inside the circle of radiusMeters around center.
// The boundary itself counts as inside.
func Within(center, p entity.Coordinate, radiusMeters float64) bool {
	return DistanceMeters(center, p) <= radiusMeters
}

// ZoneBound returns the bounding box that encloses the safe-zone circle.
func ZoneBound(center entity.Coordinate, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(center.Point(), radiusMeters)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
