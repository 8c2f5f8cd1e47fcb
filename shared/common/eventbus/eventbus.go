package eventbus

import (
	"context"
)

type IntegrationEventHandler interface {
	Handle(ctx context.Context, event Event) error
}

// EventBus ใช้ publish/subscribe integration event ระหว่างโมดูล
type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventName EventName, handler IntegrationEventHandler)
}
