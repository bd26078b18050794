package ports

import (
	"context"

	"medorders/internal/core/domain/model/customer"
	"medorders/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// The order lifecycle only needs existence lookups.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by identity.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
