package impl

import (
	"context"
	"fmt"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/errors"
	"safezone/internal/usecase"
)

type safeLocationService struct {
	safeLocationRepo repository.SafeLocationRepository
	now              func() time.Time
}

// NewSafeLocationService creates a new safe location service instance
func NewSafeLocationService(safeLocationRepo repository.SafeLocationRepository) usecase.SafeLocationUsecase {
	return &safeLocationService{
		safeLocationRepo: safeLocationRepo,
		now:              time.Now,
	}
}

// GetSafeLocation retrieves the saved reference location of a user
func (s *safeLocationService) GetSafeLocation(ctx context.Context, userID string) (*entity.ReferenceLocation, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	location, err := s.safeLocationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSafeLocationNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(userID)
		}

		return nil, fmt.Errorf("failed to find safe location: %w", err)
	}

	return location, nil
}

// SaveSafeLocation overwrites the reference location of a user
func (s *safeLocationService) SaveSafeLocation(ctx context.Context, userID string, coordinate entity.Coordinate) (*entity.ReferenceLocation, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}
	if err := coordinate.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	location := &entity.ReferenceLocation{
		UserID:     userID,
		Coordinate: coordinate,
		UpdatedAt:  s.now().UTC(),
	}

	if err := s.safeLocationRepo.Upsert(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to save safe location: %w", err)
	}

	return location, nil
}
