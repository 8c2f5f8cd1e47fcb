package service

import (
	"context"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/registry"

	"go.uber.org/zap"
)

const (
	NotificationServiceKey registry.ServiceKey = "NotificationService"
)

type NotificationService interface {
	SendEmail(ctx context.Context, to string, subject string, payload map[string]any) error
}

type notificationService struct {
}

func NewNotificationService() NotificationService {
	return &notificationService{}
}

// SendEmail ยังไม่มี mail server จริง เขียนลง log แทน
func (s *notificationService) SendEmail(ctx context.Context, to string, subject string, payload map[string]any) error {
	logger.FromContext(ctx).Info("Sending email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Any("payload", payload))
	return nil
}
