package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/cache"
	"medorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderCacheTTL = 30 * time.Second

// GetOrderQueryHandler retrieves one order with items. When a cache is
// configured, lookups by identity are served read-through with a short TTL;
// cache failures degrade to a plain database read.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	cache  cache.Cache
	logger *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// A nil cache disables caching.
func NewGetOrderQueryHandler(db *gorm.DB, c cache.Cache, logger *slog.Logger) GetOrderQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetOrderQueryHandler{db: db, cache: c, logger: logger}
}

type orderDetailRow struct {
	ID            uuid.UUID
	Code          string
	CustomerID    uuid.UUID
	Status        int
	PaymentStatus int
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	TotalAmount   decimal.Decimal
	SalesPerson   string
	Notes         string
	DeliveryDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

type orderItemRow struct {
	ProductID   uuid.UUID
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	TotalAmount decimal.Decimal
}

// Handle executes the detail query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	cacheKey := h.cacheKey(query)
	if cacheKey != "" {
		if cached, ok := h.fromCache(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	response, err := h.load(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if cacheKey != "" {
		h.toCache(ctx, cacheKey, response)
	}

	return response, nil
}

func (h GetOrderQueryHandler) load(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	tx := h.db.WithContext(ctx).Table("orders").
		Select(`id, code, customer_id, status, payment_status, subtotal, discount,
			tax, total_amount, sales_person, notes, delivery_date, created_at,
			updated_at, version`)

	var selector string
	if id := query.ID(); id != nil {
		tx = tx.Where("id = ?", id.Bytes())
		selector = id.String()
	} else {
		tx = tx.Where("code = ?", query.Code())
		selector = query.Code()
	}

	var row orderDetailRow
	if err := tx.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", selector)
		}
		return GetOrderQueryResponse{}, err
	}

	var itemRows []orderItemRow
	err := h.db.WithContext(ctx).Table("order_items").
		Select("product_id, product_name, sku, quantity, unit_price, discount, total_amount").
		Where("order_id = ?", row.ID).
		Order("product_name").
		Scan(&itemRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(itemRows))
	for _, ir := range itemRows {
		items = append(items, OrderItemResponse{
			ProductID:   ir.ProductID.String(),
			ProductName: ir.ProductName,
			SKU:         ir.SKU,
			Quantity:    ir.Quantity,
			UnitPrice:   ir.UnitPrice,
			Discount:    ir.Discount,
			TotalAmount: ir.TotalAmount,
		})
	}

	return GetOrderQueryResponse{
		ID:            row.ID.String(),
		Code:          row.Code,
		CustomerID:    row.CustomerID.String(),
		Status:        order.Status(row.Status).String(),
		PaymentStatus: order.PaymentStatus(row.PaymentStatus).String(),
		Items:         items,
		Subtotal:      row.Subtotal,
		Discount:      row.Discount,
		Tax:           row.Tax,
		TotalAmount:   row.TotalAmount,
		SalesPerson:   row.SalesPerson,
		Notes:         row.Notes,
		DeliveryDate:  row.DeliveryDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Version:       row.Version,
	}, nil
}

func (h GetOrderQueryHandler) cacheKey(query GetOrderQuery) string {
	if h.cache == nil {
		return ""
	}
	if id := query.ID(); id != nil {
		return h.cache.GenerateKey("order", id.String())
	}
	return h.cache.GenerateKey("order-code", query.Code())
}

func (h GetOrderQueryHandler) fromCache(ctx context.Context, key string) (GetOrderQueryResponse, bool) {
	raw, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "order cache read failed", "key", key, "error", err)
		return GetOrderQueryResponse{}, false
	}
	if raw == "" {
		return GetOrderQueryResponse{}, false
	}

	var response GetOrderQueryResponse
	if err = json.Unmarshal([]byte(raw), &response); err != nil {
		h.logger.WarnContext(ctx, "order cache entry corrupted", "key", key, "error", err)
		return GetOrderQueryResponse{}, false
	}

	return response, true
}

func (h GetOrderQueryHandler) toCache(ctx context.Context, key string, response GetOrderQueryResponse) {
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err = h.cache.Set(ctx, key, string(raw), orderCacheTTL); err != nil {
		h.logger.WarnContext(ctx, "order cache write failed", "key", key, "error", err)
	}
}
