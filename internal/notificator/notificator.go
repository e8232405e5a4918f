package notificator

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/alpharadar/alpharadar/internal/metrics"
	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

// Sender delivers a single message to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, message string) error
}

// Notificator is the notification sink used by the poller. Delivery failures
// and panics inside the sender are logged and returned, never propagated further.
type Notificator struct {
	logger *logger.Logger

	TelegramNotificator Sender
}

func NewNotificator(logger *logger.Logger, telNotif Sender) *Notificator {
	return &Notificator{logger: logger, TelegramNotificator: telNotif}
}

// safeCall runs a function with panic recovery and turns a panic into an error.
func (n *Notificator) safeCall(fn func() error, context string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Function panicked",
				"context", context,
				"panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("%s panicked: %v", context, r)
		}
	}()
	return fn()
}

func (n *Notificator) SendNotification(ctx context.Context, recipient models.SubscriberID, message string) error {
	err := n.safeCall(func() error {
		return n.TelegramNotificator.Send(ctx, int64(recipient), message)
	}, "telegramNotification")
	metrics.IncNotification(err == nil)
	if err != nil {
		n.logger.Error("Failed to deliver notification", "recipient", recipient, "error", err)
		return fmt.Errorf("failed to notify %d: %w", recipient, err)
	}
	n.logger.Debug("Notification delivered", "recipient", recipient)
	return nil
}
