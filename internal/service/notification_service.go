package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/events"
)

// NotificationService logs domain events for operators. Delivery to external
// channels is out of scope; the handlers are the integration point.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to entry events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEntrySubmitted, n.handleEntrySubmitted)
	n.dispatcher.Subscribe(events.EventEntryStatusChanged, n.handleEntryStatusChanged)
	n.dispatcher.Subscribe(events.EventEntryDeleted, n.handleEntryDeleted)
}

func (n *NotificationService) handleEntrySubmitted(_ context.Context, event events.Event) error {
	n.logger.Info("EntrySubmitted", zap.String("entry_id", event.EntryID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleEntryStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("EntryStatusChanged", zap.String("entry_id", event.EntryID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleEntryDeleted(_ context.Context, event events.Event) error {
	n.logger.Info("EntryDeleted", zap.String("entry_id", event.EntryID))
	return nil
}
