package entity

import "time"

// PositionUpdate is one sample from a position feed.
// A non-nil Err marks a sample the feed failed to read.
type PositionUpdate struct {
	Coordinate     Coordinate
	AccuracyMeters float64 // Horizontal accuracy reported by the device, 0 if unknown.
	Timestamp      time.Time
	Err            error
}
