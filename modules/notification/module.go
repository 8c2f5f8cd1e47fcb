package notification

import (
	"go-rewards/modules/notification/internal/integration/customer"
	"go-rewards/modules/notification/internal/integration/transaction"
	"go-rewards/modules/notification/service"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/common/module"
	"go-rewards/shared/common/registry"
	"go-rewards/shared/messaging"

	"github.com/gofiber/fiber/v3"
)

func NewModule() module.Module {
	return &moduleImp{notiSvc: service.NewNotificationService()}
}

type moduleImp struct {
	notiSvc service.NotificationService
}

func (m *moduleImp) Name() string {
	return "notification"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	eventBus.Subscribe(messaging.CustomerRegisteredIntegrationEventName, customer.NewWelcomeEmailHandler(m.notiSvc))
	eventBus.Subscribe(messaging.TransactionRecordedIntegrationEventName, transaction.NewReceiptEmailHandler(m.notiSvc))
	return nil
}

func (m *moduleImp) Services() []registry.ProvidedService {
	return []registry.ProvidedService{
		{Key: service.NotificationServiceKey, Value: m.notiSvc},
	}
}

// ไม่มี HTTP endpoint
func (m *moduleImp) RegisterRoutes(r fiber.Router) {}
