package messaging

import (
	"go-rewards/shared/common/eventbus"
)

const (
	CustomerRegisteredIntegrationEventName eventbus.EventName = "CustomerRegistered"
)

type CustomerRegisteredIntegrationEvent struct {
	eventbus.BaseEvent
	CustomerID int64
	Name       string
	Email      string
}

func NewCustomerRegisteredIntegrationEvent(customerID int64, name, email string) *CustomerRegisteredIntegrationEvent {
	return &CustomerRegisteredIntegrationEvent{
		BaseEvent:  eventbus.NewBaseEvent(CustomerRegisteredIntegrationEventName),
		CustomerID: customerID,
		Name:       name,
		Email:      email,
	}
}
