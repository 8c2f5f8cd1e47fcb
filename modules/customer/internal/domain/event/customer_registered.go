package event

import (
	"go-rewards/shared/common/domain"
	"time"
)

const (
	CustomerRegisteredDomainEventType domain.EventName = "CustomerRegistered"
)

// CustomerRegisteredDomainEvent เกิดขึ้นเมื่อมีการลงทะเบียนลูกค้าใหม่
type CustomerRegisteredDomainEvent struct {
	domain.BaseDomainEvent
	CustomerID int64
	Name       string
	Email      string
}

func NewCustomerRegisteredDomainEvent(custID int64, name, email string) *CustomerRegisteredDomainEvent {
	return &CustomerRegisteredDomainEvent{
		BaseDomainEvent: domain.BaseDomainEvent{
			Name: CustomerRegisteredDomainEventType,
			At:   time.Now(),
		},
		CustomerID: custID,
		Name:       name,
		Email:      email,
	}
}
