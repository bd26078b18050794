// Package customer provides the minimal Customer entity the order lifecycle
// depends on. Order creation only needs to establish that the referenced
// customer exists; the full customer master lives elsewhere in the ERP.
package customer

import (
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer identifies a buyer referenced by orders.
type Customer struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCustomer creates a customer with validation.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's identity.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}
