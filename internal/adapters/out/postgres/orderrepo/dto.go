// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order aggregate and its
// relational representation across the orders and order_items tables.
package orderrepo

import (
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check in Update.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex;size:32"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	Status        int       `gorm:"index"`
	PaymentStatus int       `gorm:"index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(14,2)"`
	Discount      decimal.Decimal `gorm:"type:decimal(14,2)"`
	Tax           decimal.Decimal `gorm:"type:decimal(14,2)"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2)"`
	SalesPerson   string
	Notes         string `gorm:"type:text"`
	DeliveryDate  *time.Time
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
	Version       int64
	Items         []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are written once with the order
// and never updated afterwards.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	SKU         string `gorm:"size:64"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2)"`
	Discount    decimal.Decimal `gorm:"type:decimal(14,2)"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, aggregate.ItemCount())
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          uuid.New(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Discount:    item.Discount().Amount(),
			TotalAmount: item.Total().Amount(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		Subtotal:      aggregate.Subtotal().Amount(),
		Discount:      aggregate.Discount().Amount(),
		Tax:           aggregate.Tax().Amount(),
		TotalAmount:   aggregate.Total().Amount(),
		SalesPerson:   aggregate.SalesPerson(),
		Notes:         aggregate.Notes(),
		DeliveryDate:  aggregate.DeliveryDate(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Version:       aggregate.Version(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		customerID,
		items,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		discount,
		tax,
		dto.DeliveryDate,
		dto.SalesPerson,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.ProductName, dto.SKU, dto.Quantity, unitPrice, discount)
}
