package eventbus

import (
	"context"
	"sync"

	"go-rewards/shared/common/logger"

	"go.uber.org/zap"
)

// InMemoryEventBus เก็บ subscriber ไว้ใน memory ใช้ได้เฉพาะภายใน process เดียว
type InMemoryEventBus struct {
	subscribers map[EventName][]IntegrationEventHandler
	mu          sync.RWMutex
	wg          sync.WaitGroup
}

var _ EventBus = (*InMemoryEventBus)(nil)

func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make(map[EventName][]IntegrationEventHandler),
	}
}

func (eb *InMemoryEventBus) Subscribe(eventName EventName, handler IntegrationEventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventName] = append(eb.subscribers[eventName], handler)
}

// Publish ส่ง event ไปยัง handler ทุกตัวแบบ asynchronous เพื่อไม่บล็อก request
func (eb *InMemoryEventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	handlers := append([]IntegrationEventHandler(nil), eb.subscribers[event.EventName()]...)
	eb.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	// request อาจจบไปก่อน handler ทำงานเสร็จ จึงตัด cancel ออกจาก context
	busCtx := context.WithoutCancel(ctx)

	for _, handler := range handlers {
		eb.wg.Add(1)
		go func(h IntegrationEventHandler) {
			defer eb.wg.Done()
			if err := h.Handle(busCtx, event); err != nil {
				logger.FromContext(busCtx).Error("error handling integration event",
					zap.String("event", string(event.EventName())),
					zap.String("event_id", event.EventID()),
					zap.Error(err),
				)
			}
		}(handler)
	}
	return nil
}

// Wait รอ handler ที่กำลังทำงานอยู่ให้เสร็จ ใช้ตอน shutdown
func (eb *InMemoryEventBus) Wait() {
	eb.wg.Wait()
}
