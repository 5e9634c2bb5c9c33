package usecase

import (
	"context"

	"safezone/internal/domain/entity"
	"safezone/internal/errors"
)

var (
	// ErrInvalidBoundaryExit is returned when an exit carries no user
	ErrInvalidBoundaryExit = errors.New("boundary exit requires a user id")
	// ErrNotificationUnavailable is returned when no push backend is configured
	ErrNotificationUnavailable = errors.New("notification service is not configured")
	// ErrDeliveryFailed is returned when every push batch failed
	ErrDeliveryFailed = errors.New("all notification batches failed")
)

// BoundaryExitInput describes a safe-zone exit observed by a monitor.
type BoundaryExitInput struct {
	UserID         string
	Reference      entity.Coordinate
	Position       entity.Coordinate
	DistanceMeters float64
	RadiusMeters   float64
}

// DeliveryResult summarizes a push fan-out.
type DeliveryResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// AlertUsecase moves boundary alerts from monitors to devices.
type AlertUsecase interface {
	// NotifyBoundaryExit publishes a boundary event for async delivery.
	NotifyBoundaryExit(ctx context.Context, input *BoundaryExitInput) (*entity.BoundaryEvent, error)

	// DeliverBoundaryEvent pushes a published event to its device tokens.
	DeliverBoundaryEvent(ctx context.Context, event *entity.BoundaryEvent) (*DeliveryResult, error)
}
