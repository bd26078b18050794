// Package queries contains read-side operations of the CQRS split. Query
// handlers read the database directly and return plain response structs,
// bypassing the domain aggregates and the unit of work.
package queries

import (
	"errors"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// OrderFilter narrows the order listing. Zero-valued fields are ignored, so
// an empty filter lists everything. Limit caps the result set after the
// newest-first sort, which makes Limit=N a "recent orders" query.
type OrderFilter struct {
	CustomerID    *kernel.UUID
	Status        *order.Status
	PaymentStatus *order.PaymentStatus
	SalesPerson   string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Limit         int
}

// GetOrdersQuery lists orders newest-first with optional filters.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard

	filter OrderFilter
}

// NewGetOrdersQuery creates a validated listing query.
func NewGetOrdersQuery(filter OrderFilter) (GetOrdersQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
	}
	if filter.PaymentStatus != nil {
		if err := filter.PaymentStatus.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("paymentStatus", err)
		}
	}
	if filter.Limit < 0 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 0, "unbounded")
	}

	return GetOrdersQuery{guard: guard.NewConstructorGuard(), filter: filter}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	Code          string
	CustomerID    kernel.UUID
	Status        string
	PaymentStatus string
	TotalAmount   decimal.Decimal
	ItemCount     int
	SalesPerson   string
	DeliveryDate  *time.Time
	CreatedAt     time.Time
}
