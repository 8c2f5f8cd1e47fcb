package eventhandler

import (
	"context"
	"go-rewards/modules/transaction/internal/domain/event"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

type transactionRecordedDomainEventHandler struct {
	eventBus eventbus.EventBus
}

func NewTransactionRecordedDomainEventHandler(eventBus eventbus.EventBus) domain.DomainEventHandler {
	return &transactionRecordedDomainEventHandler{eventBus: eventBus}
}

func (h *transactionRecordedDomainEventHandler) Handle(ctx context.Context, evt domain.DomainEvent) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:TransactionRecorded")
	defer span.End()

	e, ok := evt.(*event.TransactionRecordedDomainEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	return h.eventBus.Publish(ctx, messaging.NewTransactionRecordedIntegrationEvent(
		e.TransactionID,
		e.CustomerID,
		e.CustomerEmail,
		e.Amount,
		e.TransactionDate,
	))
}
