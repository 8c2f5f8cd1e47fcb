package domain

import (
	"context"
	"fmt"
	"sync"
)

var (
	ErrInvalidEvent = fmt.Errorf("invalid domain event")
)

type DomainEventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
}

// DomainEventDispatcher กระจาย event ไปยัง handler ที่ลงทะเบียนไว้ตามชื่อ event
type DomainEventDispatcher interface {
	Register(eventType EventName, handler DomainEventHandler)
	Dispatch(ctx context.Context, events []DomainEvent) error
}

type simpleDomainEventDispatcher struct {
	handlers map[EventName][]DomainEventHandler
	mu       sync.RWMutex
}

func NewSimpleDomainEventDispatcher() DomainEventDispatcher {
	return &simpleDomainEventDispatcher{
		handlers: make(map[EventName][]DomainEventHandler),
	}
}

func (d *simpleDomainEventDispatcher) Register(eventType EventName, handler DomainEventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch เรียก handler ทีละตัวตามลำดับ หยุดทันทีเมื่อ handler ตัวใดคืน error
func (d *simpleDomainEventDispatcher) Dispatch(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		// copy slice ก่อน เพื่อไม่ต้องถือ lock ระหว่างเรียก handler
		d.mu.RLock()
		handlers := append([]DomainEventHandler(nil), d.handlers[event.EventName()]...)
		d.mu.RUnlock()

		for _, h := range handlers {
			if err := h.Handle(ctx, event); err != nil {
				return fmt.Errorf("error handling event %s: %w", event.EventName(), err)
			}
		}
	}

	return nil
}
