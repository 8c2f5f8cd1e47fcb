package create

import (
	"errors"
	"net/mail"
	"strings"
)

type CreateCustomerRequest struct {
	Name          string `json:"customerName"`
	Email         string `json:"customerEmail"`
	ContactNumber string `json:"customerContactNumber"`
}

// Normalize ตัดช่องว่างหน้า-หลังออกก่อนตรวจสอบ
func (r *CreateCustomerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)
}

// Validate ตรวจทุก field แล้วรวม error ทั้งหมดกลับไปในครั้งเดียว
func (r *CreateCustomerRequest) Validate() error {
	var errs error
	if r.Name == "" {
		errs = errors.Join(errs, errors.New("customerName: must not be blank"))
	}
	if r.Email == "" {
		errs = errors.Join(errs, errors.New("customerEmail: must not be blank"))
	} else if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		errs = errors.Join(errs, errors.New("customerEmail: must be a well-formed email address"))
	}
	if r.ContactNumber == "" {
		errs = errors.Join(errs, errors.New("customerContactNumber: must not be blank"))
	}
	return errs
}
