package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/logger"
	"github.com/gunnargantzel/NMS-sub000/internal/notification"
	"github.com/gunnargantzel/NMS-sub000/internal/storage"
	"go.uber.org/zap"
)

// NotificationService sends order confirmations to the client
type NotificationService struct {
	orders    *OrderService
	formatter *notification.Formatter
	mailer    notification.Mailer
	archive   storage.Storage
	logger    *zap.Logger
}

// NewNotificationService wires the confirmation flow. archive may be nil,
// in which case sent confirmations are not kept.
func NewNotificationService(
	orders *OrderService,
	formatter *notification.Formatter,
	mailer notification.Mailer,
	archive storage.Storage,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		orders:    orders,
		formatter: formatter,
		mailer:    mailer,
		archive:   archive,
		logger:    logger,
	}
}

// SendOrderConfirmation renders and mails the confirmation for an order.
// Delivery is attempted once; archiving is best effort.
func (s *NotificationService) SendOrderConfirmation(ctx context.Context, orderID int64, customMessage string) (*domain.SendConfirmationResponse, error) {
	order, err := s.orders.GetAggregate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	recipient := strings.TrimSpace(order.ClientEmail)
	if recipient == "" {
		return nil, invalidInput("order %s has no client email", order.OrderNumber)
	}

	confirmation, err := s.formatter.Render(order, customMessage)
	if err != nil {
		return nil, err
	}

	log := logger.WithOrder(s.logger, order.ID, order.OrderNumber)
	err = s.mailer.Send(ctx, notification.Message{
		To:      recipient,
		Subject: confirmation.Subject,
		HTML:    confirmation.HTML,
	})
	if err != nil {
		log.Error("order confirmation delivery failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	log.Info("order confirmation sent", zap.String("recipient", recipient))

	return &domain.SendConfirmationResponse{
		Message:   "Order confirmation sent",
		Recipient: recipient,
		ArchiveID: s.store(ctx, log, order.OrderNumber, confirmation.HTML),
	}, nil
}

// store archives the sent HTML and returns its key, or "" on failure
func (s *NotificationService) store(ctx context.Context, log *zap.Logger, orderNumber, html string) string {
	if s.archive == nil {
		return ""
	}
	key := fmt.Sprintf("confirmations/%s/%s.html", orderNumber, uuid.NewString())
	if _, err := s.archive.Put(ctx, key, "text/html; charset=utf-8", strings.NewReader(html)); err != nil {
		log.Warn("failed to archive order confirmation", zap.String("key", key), zap.Error(err))
		return ""
	}
	return key
}
