// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and post-commit auditing.
package commands

import (
	"context"

	"medorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to product and customer repositories
	// within a transaction.
	CatalogRepoFactory interface {
		ProductRepository() ports.ProductRepository
		CustomerRepository() ports.CustomerRepository
	}

	// InventoryFactory provides access to the inventory coordinator within a
	// transaction, so stock mutations commit atomically with order changes.
	InventoryFactory interface {
		InventoryCoordinator() ports.InventoryCoordinator
	}

	// OrderUoW manages transactions for order-only operations
	// (payment status changes, field amendments).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions for operations that move an order
	// through its lifecycle and touch stock: status transitions and
	// cancellation.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InventoryFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// CheckoutUoW manages transactions for order creation, which reads the
	// catalog, persists the order, and reserves stock in one transaction.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		InventoryFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
