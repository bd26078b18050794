package order

import (
	"fmt"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

// Item is a line within an order. Product name, SKU, and unit price are
// snapshotted at order time so historical orders are unaffected by later
// catalog changes. Items are immutable once the order is created: there is
// no partial-item edit, only cancellation of the whole order.
type Item struct {
	productID   kernel.UUID
	productName string
	sku         string
	quantity    int
	unitPrice   kernel.Money
	discount    kernel.Money
	total       kernel.Money
}

// NewItem creates an order line, validating that the quantity is positive and
// the line discount does not exceed quantity times unit price. The line total
// is computed as quantity * unitPrice - discount.
func NewItem(
	productID kernel.UUID,
	productName string,
	sku string,
	quantity int,
	unitPrice kernel.Money,
	discount kernel.Money,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	gross := unitPrice.MulInt(quantity)
	total, err := gross.Sub(discount)
	if err != nil {
		return Item{}, errs.NewValueIsOutOfRangeError(
			"lineDiscount", discount.String(), "0.00", gross.String(),
		)
	}

	return Item{
		productID:   productID,
		productName: productName,
		sku:         sku,
		quantity:    quantity,
		unitPrice:   unitPrice,
		discount:    discount,
		total:       total,
	}, nil
}

// ProductID returns the referenced product's identity.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at order time.
func (i Item) ProductName() string {
	return i.productName
}

// SKU returns the product SKU captured at order time.
func (i Item) SKU() string {
	return i.sku
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshotted from the product.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Discount returns the per-line discount.
func (i Item) Discount() kernel.Money {
	return i.discount
}

// Total returns the computed line total.
func (i Item) Total() kernel.Money {
	return i.total
}
