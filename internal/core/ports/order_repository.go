package ports

import (
	"context"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The update is guarded by
	// the aggregate's version: a stale version fails with a
	// ConcurrentModificationError instead of silently overwriting a
	// concurrent writer's transition.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identity, items included.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order by its human-facing order code.
	GetByCode(ctx context.Context, code string) (*order.Order, error)
}
