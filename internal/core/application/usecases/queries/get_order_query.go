package queries

import (
	"errors"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQueryByID or NewGetOrderQueryByCode constructor",
	)
)

// GetOrderQuery retrieves one order with its line items, addressed either by
// internal identity or by the human-facing order code.
type GetOrderQuery struct {
	guard guard.ConstructorGuard

	id   *kernel.UUID
	code string
}

// NewGetOrderQueryByID creates a detail query addressed by identity.
func NewGetOrderQueryByID(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return GetOrderQuery{guard: guard.NewConstructorGuard(), id: &id}, nil
}

// NewGetOrderQueryByCode creates a detail query addressed by order code.
func NewGetOrderQueryByCode(code string) (GetOrderQuery, error) {
	if code == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("code")
	}

	return GetOrderQuery{guard: guard.NewConstructorGuard(), code: code}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the identity selector, or nil when addressing by code.
func (q GetOrderQuery) ID() *kernel.UUID {
	return q.id
}

// Code returns the code selector, or empty when addressing by identity.
func (q GetOrderQuery) Code() string {
	return q.code
}

// OrderItemResponse is one line item of the order detail.
type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// GetOrderQueryResponse is the full order detail. JSON tags double as the
// cache serialization format.
type GetOrderQueryResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	CustomerID    string              `json:"customerId"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Tax           decimal.Decimal     `json:"tax"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	SalesPerson   string              `json:"salesPerson"`
	Notes         string              `json:"notes"`
	DeliveryDate  *time.Time          `json:"deliveryDate,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Version       int64               `json:"version"`
}
