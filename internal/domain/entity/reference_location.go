package entity

import "time"

// ReferenceLocation is the saved "home" point a user's safe zone is centered on.
// Values are treated as immutable: a refresh replaces the whole value.
type ReferenceLocation struct {
	UserID     string     // Owner of the reference point.
	Coordinate Coordinate // Center of the safe zone.
	UpdatedAt  time.Time  // Last time the store overwrote this point, zero if unknown.
}
