package queries

import (
	"context"
	"time"

	"medorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order statistics from the database.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for stats queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

type statusCountRow struct {
	Status int
	Count  int64
}

type paymentCountRow struct {
	PaymentStatus int
	Count         int64
}

type revenueRow struct {
	Revenue decimal.Decimal
	Count   int64
}

// Handle executes the aggregation. Counts cover every order; revenue and the
// average order value cover delivered and completed orders only.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	response := GetOrderStatsQueryResponse{
		ByStatus:          make(map[string]int64),
		ByPaymentStatus:   make(map[string]int64),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		GeneratedAt:       time.Now().UTC(),
	}

	var statusRows []statusCountRow
	err := h.db.WithContext(ctx).Table("orders").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	for _, row := range statusRows {
		response.ByStatus[order.Status(row.Status).String()] = row.Count
		response.TotalOrders += row.Count
	}

	var paymentRows []paymentCountRow
	err = h.db.WithContext(ctx).Table("orders").
		Select("payment_status, COUNT(*) AS count").
		Group("payment_status").
		Scan(&paymentRows).Error
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	for _, row := range paymentRows {
		response.ByPaymentStatus[order.PaymentStatus(row.PaymentStatus).String()] = row.Count
	}

	var revenue revenueRow
	err = h.db.WithContext(ctx).Table("orders").
		Select("COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS count").
		Where("status IN ?", []int{int(order.StatusDelivered), int(order.StatusCompleted)}).
		Take(&revenue).Error
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	response.TotalRevenue = revenue.Revenue
	if revenue.Count > 0 {
		response.AverageOrderValue = revenue.Revenue.
			Div(decimal.NewFromInt(revenue.Count)).
			Round(2)
	}

	return response, nil
}
