package eventhandler

import (
	"context"
	"go-rewards/modules/customer/internal/domain/event"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

// customerRegisteredDomainEventHandler แปลง domain event เป็น integration event แล้ว publish ออกไปให้โมดูลอื่น
type customerRegisteredDomainEventHandler struct {
	eventBus eventbus.EventBus
}

func NewCustomerRegisteredDomainEventHandler(eventBus eventbus.EventBus) domain.DomainEventHandler {
	return &customerRegisteredDomainEventHandler{
		eventBus: eventBus,
	}
}

func (h *customerRegisteredDomainEventHandler) Handle(ctx context.Context, evt domain.DomainEvent) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:CustomerRegistered")
	defer span.End()

	e, ok := evt.(*event.CustomerRegisteredDomainEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	integrationEvent := messaging.NewCustomerRegisteredIntegrationEvent(
		e.CustomerID,
		e.Name,
		e.Email,
	)

	return h.eventBus.Publish(ctx, integrationEvent)
}
