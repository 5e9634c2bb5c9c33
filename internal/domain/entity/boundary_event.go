package entity

import "time"

// BoundaryEvent describes a device leaving its safe zone.
type BoundaryEvent struct {
	EventID        string     `json:"event_id"`
	RequestID      string     `json:"request_id,omitempty"` // For distributed tracing
	UserID         string     `json:"user_id"`
	Reference      Coordinate `json:"reference"`
	Position       Coordinate `json:"position"`
	DistanceMeters float64    `json:"distance_meters"`
	RadiusMeters   float64    `json:"radius_meters"`
	OccurredAt     time.Time  `json:"occurred_at"`
	DeviceTokens   []string   `json:"device_tokens,omitempty"` // FCM tokens to notify
}
