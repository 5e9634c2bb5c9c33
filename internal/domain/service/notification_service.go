package service

import (
	"context"
)

// Notification is one push message: the visible alert plus its data payload.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult is the per-token outcome of one multicast.
type BatchResult struct {
	SuccessCount int
	FailureCount int

	// Tokens the push backend reported as unregistered or malformed
	InvalidTokens []string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification pushes n to up to 500 device tokens in one request.
	// An error means the whole batch failed; per-token failures are in the result.
	SendBatchNotification(ctx context.Context, tokens []string, n Notification) (*BatchResult, error)
}
