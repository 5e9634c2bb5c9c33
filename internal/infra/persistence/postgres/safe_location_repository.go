// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// safeLocationRepository implements the domain.SafeLocationRepository interface.
type safeLocationRepository struct {
	db *gorm.DB
}

// NewSafeLocationRepository is the constructor for safeLocationRepository.
func NewSafeLocationRepository(db *gorm.DB) repository.SafeLocationRepository {
	return &safeLocationRepository{db: db}
}

// FindByUserID retrieves the saved reference location of a user.
func (repo *safeLocationRepository) FindByUserID(ctx context.Context, userID string) (*entity.ReferenceLocation, error) {
	var locationM model.SafeLocationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSafeLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find safe location by user ID")
	}

	return toReferenceLocationDomain(&locationM), nil
}

// Upsert writes the reference location; an existing row for the user is overwritten.
func (repo *safeLocationRepository) Upsert(ctx context.Context, location *entity.ReferenceLocation) error {
	locationM := fromReferenceLocationDomain(location)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
		}).
		Create(locationM).Error
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("safe location out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert safe location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

func toReferenceLocationDomain(m *model.SafeLocationModel) *entity.ReferenceLocation {
	return &entity.ReferenceLocation{
		UserID: m.UserID,
		Coordinate: entity.Coordinate{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		},
		UpdatedAt: m.UpdatedAt,
	}
}

func fromReferenceLocationDomain(location *entity.ReferenceLocation) *model.SafeLocationModel {
	return &model.SafeLocationModel{
		UserID:    location.UserID,
		Latitude:  location.Coordinate.Latitude,
		Longitude: location.Coordinate.Longitude,
		UpdatedAt: location.UpdatedAt,
	}
}
