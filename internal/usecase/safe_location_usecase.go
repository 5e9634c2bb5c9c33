package usecase

import (
	"context"

	"safezone/internal/domain/entity"
)

// SafeLocationUsecase serves the reference location of each user.
type SafeLocationUsecase interface {
	// GetSafeLocation returns the saved reference, or ErrReferenceNotFound.
	GetSafeLocation(ctx context.Context, userID string) (*entity.ReferenceLocation, error)

	// SaveSafeLocation overwrites the reference of userID (last write wins).
	SaveSafeLocation(ctx context.Context, userID string, coordinate entity.Coordinate) (*entity.ReferenceLocation, error)
}
