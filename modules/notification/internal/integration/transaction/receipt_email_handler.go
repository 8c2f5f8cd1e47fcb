package transaction

import (
	"context"
	"fmt"
	"go-rewards/modules/notification/service"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/messaging"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type receiptEmailHandler struct {
	notiService service.NotificationService
}

func NewReceiptEmailHandler(notiService service.NotificationService) *receiptEmailHandler {
	return &receiptEmailHandler{
		notiService: notiService,
	}
}

func (h *receiptEmailHandler) Handle(ctx context.Context, evt eventbus.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("integration_event")
	ctx, span := tracer.Start(ctx, "IntegrationEvent:ReceiptEmail")
	defer span.End()

	e, ok := evt.(*messaging.TransactionRecordedIntegrationEvent)
	if !ok {
		return fmt.Errorf("invalid event type %T", evt)
	}

	return h.notiService.SendEmail(ctx, e.CustomerEmail, "Your purchase has been recorded", map[string]any{
		"transactionId":   e.TransactionID,
		"amount":          e.Amount.StringFixed(2),
		"transactionDate": e.TransactionDate.Format(time.DateOnly),
	})
}
