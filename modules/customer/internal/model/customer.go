package model

import (
	"go-rewards/modules/customer/internal/domain/event"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/idgen"
	"go-rewards/shared/contract/customercontract"
	"time"
)

type Customer struct {
	ID               int64     `db:"id"` // tag db ใช้สำหรับ StructScan() ของ sqlx
	Name             string    `db:"customer_name"`
	Email            string    `db:"customer_email"`
	ContactNumber    string    `db:"customer_contact_number"`
	CreatedAt        time.Time `db:"created_at"`
	domain.Aggregate           // embed: เพื่อให้กลายเป็น Aggregate ของ Customer
}

// NewCustomer สร้างลูกค้าใหม่พร้อม id และบันทึก event "CustomerRegistered"
func NewCustomer(name, email, contactNumber string) *Customer {
	customer := &Customer{
		ID:            idgen.GenerateID(),
		Name:          name,
		Email:         email,
		ContactNumber: contactNumber,
	}

	customer.AddDomainEvent(event.NewCustomerRegisteredDomainEvent(customer.ID, customer.Name, customer.Email))

	return customer
}

func (c *Customer) ToInfo() *customercontract.CustomerInfo {
	return customercontract.NewCustomerInfo(c.ID, c.Name, c.Email, c.ContactNumber)
}
