package queries

import (
	"errors"
	"time"

	"medorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery aggregates order counts and revenue for dashboards.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse summarizes the order book. Revenue counts only
// delivered and completed orders: money from orders still in flight or
// cancelled is not revenue yet.
type GetOrderStatsQueryResponse struct {
	TotalOrders       int64            `json:"totalOrders"`
	ByStatus          map[string]int64 `json:"byStatus"`
	ByPaymentStatus   map[string]int64 `json:"byPaymentStatus"`
	TotalRevenue      decimal.Decimal  `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal  `json:"averageOrderValue"`
	GeneratedAt       time.Time        `json:"generatedAt"`
}
