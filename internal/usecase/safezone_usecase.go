package usecase

import (
	"context"

	"safezone/internal/domain/entity"
)

// StartParams configures one monitoring session.
type StartParams struct {
	// Reference is the safe-zone center. Nil keeps the currently cached
	// reference, which may be absent until a Refresh succeeds.
	Reference *entity.ReferenceLocation

	// RadiusMeters overrides the configured radius when positive.
	RadiusMeters float64

	// OnUpdate receives the state after every evaluated position.
	OnUpdate func(entity.SafetyState)

	// OnAlert is called once each time the device leaves the safe zone.
	OnAlert func()
}

// MonitorSnapshot is a consistent view of a monitor's derived state.
type MonitorSnapshot struct {
	State          entity.SafetyState
	Reference      *entity.ReferenceLocation
	Position       *entity.Coordinate // Latest accepted position, nil before the first one.
	DistanceMeters float64            // Meaningful only when State is not Unknown.
	RadiusMeters   float64
	Running        bool
}

// SafeZoneMonitor watches a position stream against a reference point.
//
// OnUpdate and OnAlert run on the delivering goroutine while the monitor holds
// its delivery lock; they must not call Stop, ReplaceReference, Refresh or
// SaveCurrentAsReference synchronously.
type SafeZoneMonitor interface {
	// Start requests location permission and subscribes to positions.
	// A refused permission fails with ErrPermissionDenied.
	Start(ctx context.Context, params StartParams) error

	// Stop cancels the subscription. After it returns no callback fires.
	Stop() error

	// State returns the current safety state.
	State() entity.SafetyState

	// Reference returns a copy of the cached reference, or nil.
	Reference() *entity.ReferenceLocation

	// LastDistance returns the distance of the latest evaluation. ok is false
	// while the state is Unknown.
	LastDistance() (meters float64, ok bool)

	// Snapshot returns the current derived state.
	Snapshot() MonitorSnapshot

	// ReplaceReference swaps the cached reference and re-derives the state
	// against the latest position.
	ReplaceReference(ref entity.ReferenceLocation)

	// Refresh re-fetches the reference of userID from the store.
	// Store errors are returned as-is and the cached reference is kept.
	Refresh(ctx context.Context, userID string) error

	// SaveCurrentAsReference stores the latest position as userID's reference.
	SaveCurrentAsReference(ctx context.Context, userID string) error
}
