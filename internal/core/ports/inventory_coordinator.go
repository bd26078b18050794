package ports

import (
	"context"

	"medorders/internal/core/domain/model/order"
)

// InventoryCoordinator reacts to order lifecycle events by mutating stock
// quantities and recording stock movements. It holds the authoritative
// overselling guard: OnOrderCreated performs an atomic conditional decrement,
// so two orders racing on the same product cannot both reserve the last
// units even though both passed the manager's advisory pre-check.
//
// Each hook must be called exactly once per order, inside the same unit of
// work that persists the corresponding order change.
type InventoryCoordinator interface {
	// OnOrderCreated reserves stock for every line item. Fails with an
	// InsufficientInventoryError if any product cannot cover its line.
	OnOrderCreated(ctx context.Context, aggregate *order.Order) error

	// OnOrderDelivered converts the reservation into a permanent deduction.
	// Invoked on the shipped-to-delivered transition only.
	OnOrderDelivered(ctx context.Context, aggregate *order.Order) error

	// OnOrderCancelled releases the reservation back to available stock.
	OnOrderCancelled(ctx context.Context, aggregate *order.Order) error
}
