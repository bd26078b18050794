// Package product provides the Product entity and its stock figures.
// Order creation reads products to snapshot name, SKU, and price, and reads
// stock to pre-check availability; all stock mutation goes through the
// inventory coordinator.
package product

import (
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog entry. Orders snapshot its name, SKU, and unit price
// at creation time, so later edits never affect historical orders.
type Product struct {
	id        kernel.UUID
	sku       string
	name      string
	unitPrice kernel.Money
	active    bool

	isConstructed bool
}

// NewProduct creates an active product with validation.
func NewProduct(id kernel.UUID, sku, name string, unitPrice kernel.Money) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		validateSKU(sku),
		validateName(name),
	); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		sku:           sku,
		name:          name,
		unitPrice:     unitPrice,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, sku, name string, unitPrice kernel.Money, active bool) (*Product, error) {
	p, err := NewProduct(id, sku, name, unitPrice)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the stock keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// IsActive reports whether the product is orderable.
func (p *Product) IsActive() bool {
	return p.active
}

// Deactivate flags the product as no longer orderable.
func (p *Product) Deactivate() {
	p.active = false
}

func validateSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

// Stock is the per-product inventory record read by order creation.
// Available is the quantity on hand not yet reserved; Reserved is held for
// in-flight orders. Both are mutated only by the inventory coordinator's
// conditional updates, never through this package.
type Stock struct {
	ProductID kernel.UUID
	Available int
	Reserved  int
}
