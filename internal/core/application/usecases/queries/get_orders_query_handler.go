package queries

import (
	"context"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID            uuid.UUID
	Code          string
	CustomerID    uuid.UUID
	Status        int
	PaymentStatus int
	TotalAmount   decimal.Decimal
	ItemCount     int
	SalesPerson   string
	DeliveryDate  *time.Time
	CreatedAt     time.Time
}

// Handle executes the listing. Filters compose with AND; results are ordered
// by creation time descending so Limit=N yields the N most recent orders.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	tx := h.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id, orders.code, orders.customer_id, orders.status,
			orders.payment_status, orders.total_amount, orders.sales_person,
			orders.delivery_date, orders.created_at,
			(SELECT COUNT(*) FROM order_items WHERE order_items.order_id = orders.id) AS item_count`)

	if filter.CustomerID != nil {
		tx = tx.Where("orders.customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.Status != nil {
		tx = tx.Where("orders.status = ?", int(*filter.Status))
	}
	if filter.PaymentStatus != nil {
		tx = tx.Where("orders.payment_status = ?", int(*filter.PaymentStatus))
	}
	if filter.SalesPerson != "" {
		tx = tx.Where("orders.sales_person = ?", filter.SalesPerson)
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("orders.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("orders.created_at <= ?", *filter.CreatedTo)
	}

	tx = tx.Order("orders.created_at DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []orderSummaryRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summary, err := summaryFromRow(row)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func summaryFromRow(row orderSummaryRow) (OrderSummaryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:            id,
		Code:          row.Code,
		CustomerID:    customerID,
		Status:        order.Status(row.Status).String(),
		PaymentStatus: order.PaymentStatus(row.PaymentStatus).String(),
		TotalAmount:   row.TotalAmount,
		ItemCount:     row.ItemCount,
		SalesPerson:   row.SalesPerson,
		DeliveryDate:  row.DeliveryDate,
		CreatedAt:     row.CreatedAt,
	}, nil
}
