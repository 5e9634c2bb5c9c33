// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"safezone/internal/domain/entity"
	"safezone/internal/errors"
)

// ErrSafeLocationNotFound is returned when a user has no saved safe location.
var ErrSafeLocationNotFound = errors.New("safe location not found")

// SafeLocationRepository defines the persistence operations for reference points.
type SafeLocationRepository interface {
	// FindByUserID retrieves the saved reference location of a user.
	// Returns ErrSafeLocationNotFound if none exists.
	FindByUserID(ctx context.Context, userID string) (*entity.ReferenceLocation, error)

	// Upsert writes the reference location, replacing any previous one.
	Upsert(ctx context.Context, location *entity.ReferenceLocation) error
}
