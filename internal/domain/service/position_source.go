package service

import (
	"context"
	"time"

	"safezone/internal/domain/entity"
)

// Accuracy is the precision class requested from the platform for a position
// watch. It is a hint; samples are never rejected on their reported accuracy.
type Accuracy int

const (
	AccuracyLowest Accuracy = iota + 1
	AccuracyLow
	AccuracyBalanced
	AccuracyHigh
	AccuracyHighest
)

// ParseAccuracy maps a config value to an Accuracy, defaulting to AccuracyHigh.
func ParseAccuracy(s string) Accuracy {
	switch s {
	case "lowest":
		return AccuracyLowest
	case "low":
		return AccuracyLow
	case "balanced":
		return AccuracyBalanced
	case "highest":
		return AccuracyHighest
	default:
		return AccuracyHigh
	}
}

// WatchOptions configures a continuous position watch.
type WatchOptions struct {
	Accuracy    Accuracy
	MinInterval time.Duration // Minimum spacing between delivered samples.
}

// Subscription is an active position watch.
type Subscription interface {
	// Unsubscribe stops delivery. It is safe to call more than once.
	Unsubscribe() error
}

// PositionSource delivers device positions pushed by a location service.
type PositionSource interface {
	// RequestPermission asks the platform for location access.
	// It returns false without error when access is refused.
	RequestPermission(ctx context.Context) (bool, error)

	// Watch starts pushing samples to handler in delivery order until the
	// returned subscription is cancelled.
	Watch(ctx context.Context, opts WatchOptions, handler func(entity.PositionUpdate)) (Subscription, error)
}
