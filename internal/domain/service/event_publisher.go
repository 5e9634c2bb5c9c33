package service

import (
	"context"

	"safezone/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBoundaryEvent publishes a safe-zone exit for async fan-out
	PublishBoundaryEvent(ctx context.Context, event *entity.BoundaryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
