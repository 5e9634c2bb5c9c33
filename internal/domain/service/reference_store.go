package service

import (
	"context"

	"safezone/internal/domain/entity"
)

// ReferenceStore persists a user's reference location behind the HTTP boundary.
type ReferenceStore interface {
	// Fetch returns the saved reference for userID.
	// It fails with ErrReferenceNotFound, ErrUnauthorized or ErrNetwork.
	Fetch(ctx context.Context, userID string) (*entity.ReferenceLocation, error)

	// Save overwrites the reference for userID unconditionally.
	Save(ctx context.Context, userID string, coordinate entity.Coordinate) error
}
