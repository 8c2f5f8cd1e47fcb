package domain

import "time"

// EventName ชื่อของ domain event เช่น "CustomerRegistered"
type EventName string

type DomainEvent interface {
	EventName() EventName
	OccurredAt() time.Time
}

// BaseDomainEvent ใช้ฝังใน event อื่นๆ เพื่อ reuse method
type BaseDomainEvent struct {
	Name EventName
	At   time.Time
}

func (e BaseDomainEvent) EventName() EventName {
	return e.Name
}

func (e BaseDomainEvent) OccurredAt() time.Time {
	return e.At
}
