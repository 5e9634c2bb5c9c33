// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"safezone/internal/errors"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinate is returned when a coordinate is not a finite point on the globe.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate is finite and within the WGS84 ranges.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return errors.Wrap(ErrInvalidCoordinate, "coordinate must be finite")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %f out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %f out of range", c.Longitude)
	}

	return nil
}

// Point converts the coordinate to an orb point, which is ordered [lon, lat].
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint converts an orb point back to a coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}
