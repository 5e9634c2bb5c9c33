package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	defaultAlertTitle = "安全區域警示"
	defaultAlertBody  = "已離開安全區域，目前距離 %.0f 公尺"
)

type alertService struct {
	logger          *slog.Logger
	publisher       service.EventPublisher
	notificationSvc service.NotificationService
	alertConfig     *config.AlertConfig
	now             func() time.Time
}

// NewAlertService creates a new alert service instance.
// notificationSvc may be nil in processes that only publish.
func NewAlertService(
	logger *slog.Logger,
	publisher service.EventPublisher,
	notificationSvc service.NotificationService,
	cfg *config.Config,
) usecase.AlertUsecase {
	alertConfig := &config.AlertConfig{}
	if cfg != nil && cfg.Alert != nil {
		alertConfig = cfg.Alert
	}

	return &alertService{
		logger:          logger,
		publisher:       publisher,
		notificationSvc: notificationSvc,
		alertConfig:     alertConfig,
		now:             time.Now,
	}
}

// NotifyBoundaryExit builds a boundary event and publishes it for async delivery
func (s *alertService) NotifyBoundaryExit(ctx context.Context, input *usecase.BoundaryExitInput) (*entity.BoundaryEvent, error) {
	if input == nil || input.UserID == "" {
		return nil, usecase.ErrInvalidBoundaryExit
	}

	event := &entity.BoundaryEvent{
		EventID:        uuid.New().String(),
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		UserID:         input.UserID,
		Reference:      input.Reference,
		Position:       input.Position,
		DistanceMeters: input.DistanceMeters,
		RadiusMeters:   input.RadiusMeters,
		OccurredAt:     s.now().UTC(),
		DeviceTokens:   append([]string(nil), s.alertConfig.DeviceTokens...),
	}

	if err := s.publisher.PublishBoundaryEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish boundary event: %w", err)
	}

	s.logger.Info("Boundary event published",
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.Int("device_count", len(event.DeviceTokens)),
	)

	return event, nil
}

// DeliverBoundaryEvent pushes a boundary event to its device tokens in batches
func (s *alertService) DeliverBoundaryEvent(ctx context.Context, event *entity.BoundaryEvent) (*usecase.DeliveryResult, error) {
	if event == nil || event.UserID == "" {
		return nil, usecase.ErrInvalidBoundaryExit
	}

	result := &usecase.DeliveryResult{}
	if len(event.DeviceTokens) == 0 {
		return result, nil
	}

	if s.notificationSvc == nil {
		return nil, usecase.ErrNotificationUnavailable
	}

	notification := s.content(event)

	failedBatches := 0
	batches := 0
	for i := 0; i < len(event.DeviceTokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(event.DeviceTokens))
		batch := event.DeviceTokens[i:end]
		batches++

		batchResult, err := s.notificationSvc.SendBatchNotification(ctx, batch, notification)
		if err != nil {
			// Log error but continue with other batches
			s.logger.Error("Failed to send notification batch",
				slog.String("event_id", event.EventID),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.FailureCount += len(batch)
			failedBatches++

			continue
		}

		result.SuccessCount += batchResult.SuccessCount
		result.FailureCount += batchResult.FailureCount
		result.InvalidTokens = append(result.InvalidTokens, batchResult.InvalidTokens...)
	}

	if failedBatches == batches {
		return result, usecase.ErrDeliveryFailed
	}

	s.logger.Info("Boundary event delivered",
		slog.String("event_id", event.EventID),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
		slog.Int("invalid_tokens", len(result.InvalidTokens)),
	)

	return result, nil
}

// content builds the push message; a configured body is used verbatim
func (s *alertService) content(event *entity.BoundaryEvent) service.Notification {
	title := s.alertConfig.Title
	if title == "" {
		title = defaultAlertTitle
	}

	body := s.alertConfig.Body
	if body == "" {
		body = fmt.Sprintf(defaultAlertBody, event.DistanceMeters)
	}

	return service.Notification{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"event_id":        event.EventID,
			"user_id":         event.UserID,
			"distance_meters": strconv.FormatFloat(event.DistanceMeters, 'f', 0, 64),
			"radius_meters":   strconv.FormatFloat(event.RadiusMeters, 'f', 0, 64),
			"latitude":        fmt.Sprintf("%f", event.Position.Latitude),
			"longitude":       fmt.Sprintf("%f", event.Position.Longitude),
		},
	}
}
