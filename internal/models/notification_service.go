package models

import "context"

// NotificationService delivers text messages to subscribers.
type NotificationService interface {
	// SendNotification delivers one message. The returned error is for logging
	// and accounting only; callers must not abort on it.
	SendNotification(ctx context.Context, recipient SubscriberID, message string) error
}
