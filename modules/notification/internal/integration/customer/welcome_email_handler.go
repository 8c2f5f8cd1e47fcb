package customer

import (
	"context"
	"fmt"
	"go-rewards/modules/notification/service"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

type welcomeEmailHandler struct {
	notiService service.NotificationService
}

func NewWelcomeEmailHandler(notiService service.NotificationService) *welcomeEmailHandler {
	return &welcomeEmailHandler{
		notiService: notiService,
	}
}

func (h *welcomeEmailHandler) Handle(ctx context.Context, evt eventbus.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("integration_event")
	ctx, span := tracer.Start(ctx, "IntegrationEvent:WelcomeEmail")
	defer span.End()

	e, ok := evt.(*messaging.CustomerRegisteredIntegrationEvent)
	if !ok {
		return fmt.Errorf("invalid event type %T", evt)
	}

	return h.notiService.SendEmail(ctx, e.Email, "Welcome to our rewards program!", map[string]any{
		"customerName": e.Name,
		"message":      "Thank you for joining us! Every purchase over the minimum spend now earns you points.",
	})
}
