package ports

import (
	"context"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products and their
// stock records. Order creation reads both; stock writes happen only through
// the InventoryCoordinator.
type ProductRepository interface {
	// Add persists a new product with a zero stock record.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identity.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetStock retrieves the stock record for a product. The figures are a
	// snapshot: order creation uses them as an advisory availability check,
	// while the authoritative reservation is the coordinator's conditional
	// update.
	GetStock(ctx context.Context, productID kernel.UUID) (product.Stock, error)

	// SaveStock replaces a product's stock record. Used for receiving
	// shipments and test seeding, not by the order lifecycle itself.
	SaveStock(ctx context.Context, stock product.Stock) error
}
