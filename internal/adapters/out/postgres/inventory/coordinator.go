// Package inventory implements the InventoryCoordinator against the
// product_stocks table. All stock mutations are single conditional UPDATE
// statements, so the overselling guard holds under concurrent orders without
// row locks held across application round trips.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock movement kinds recorded for each coordinator action.
const (
	MovementReserve = "reserve"
	MovementDeduct  = "deduct"
	MovementRelease = "release"
)

// StockMovementDTO is the audit trail of stock mutations, one row per order
// line per coordinator action.
type StockMovementDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Kind      string    `gorm:"size:16"`
	Quantity  int
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "stock_movements".
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

// GormInventoryCoordinator implements InventoryCoordinator using GORM. It is
// always constructed over the unit of work's transaction connection, so its
// mutations commit or roll back with the order change that triggered them.
type GormInventoryCoordinator struct {
	db *gorm.DB
}

// NewGormInventoryCoordinator creates a coordinator bound to the given
// connection.
func NewGormInventoryCoordinator(db *gorm.DB) *GormInventoryCoordinator {
	return &GormInventoryCoordinator{db: db}
}

// OnOrderCreated reserves stock for every line of the order. The decrement
// is conditional on sufficient availability: when a concurrent order already
// took the units, zero rows match and the reservation fails with an
// InsufficientInventoryError carrying the current availability.
func (c *GormInventoryCoordinator) OnOrderCreated(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		quantity := item.Quantity()
		productID := item.ProductID().Bytes()

		result := c.db.WithContext(ctx).Exec(`
			UPDATE product_stocks
			SET available = available - ?, reserved = reserved + ?
			WHERE product_id = ? AND available >= ?
		`, quantity, quantity, productID, quantity)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			available, err := c.currentAvailability(ctx, productID)
			if err != nil {
				return err
			}
			return errs.NewInsufficientInventoryError(
				item.ProductID().String(), quantity, available,
			)
		}

		if err := c.recordMovement(ctx, aggregate, item.ProductID().Bytes(), MovementReserve, quantity); err != nil {
			return err
		}
	}

	return nil
}

// OnOrderDelivered converts the reservation into a permanent deduction.
func (c *GormInventoryCoordinator) OnOrderDelivered(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		quantity := item.Quantity()
		productID := item.ProductID().Bytes()

		result := c.db.WithContext(ctx).Exec(`
			UPDATE product_stocks
			SET reserved = reserved - ?
			WHERE product_id = ? AND reserved >= ?
		`, quantity, productID, quantity)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewIntegrityError(fmt.Sprintf(
				"order %s: reservation of %d for product %s missing on delivery",
				aggregate.Code(), quantity, item.ProductID().String(),
			))
		}

		if err := c.recordMovement(ctx, aggregate, productID, MovementDeduct, quantity); err != nil {
			return err
		}
	}

	return nil
}

// OnOrderCancelled releases the reservation back to available stock.
// Cancellation is only reachable before delivery, so the reservation must
// still exist; a missing one is an integrity violation.
func (c *GormInventoryCoordinator) OnOrderCancelled(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		quantity := item.Quantity()
		productID := item.ProductID().Bytes()

		result := c.db.WithContext(ctx).Exec(`
			UPDATE product_stocks
			SET available = available + ?, reserved = reserved - ?
			WHERE product_id = ? AND reserved >= ?
		`, quantity, quantity, productID, quantity)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewIntegrityError(fmt.Sprintf(
				"order %s: reservation of %d for product %s missing on cancellation",
				aggregate.Code(), quantity, item.ProductID().String(),
			))
		}

		if err := c.recordMovement(ctx, aggregate, productID, MovementRelease, quantity); err != nil {
			return err
		}
	}

	return nil
}

func (c *GormInventoryCoordinator) currentAvailability(ctx context.Context, productID uuid.UUID) (int, error) {
	var available int
	err := c.db.WithContext(ctx).Table("product_stocks").
		Select("available").
		Where("product_id = ?", productID).
		Take(&available).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, errs.NewObjectNotFoundError("stock", productID.String())
	}
	if err != nil {
		return 0, err
	}

	return available, nil
}

func (c *GormInventoryCoordinator) recordMovement(
	ctx context.Context,
	aggregate *order.Order,
	productID uuid.UUID,
	kind string,
	quantity int,
) error {
	movement := StockMovementDTO{
		ID:        uuid.New(),
		ProductID: productID,
		OrderID:   aggregate.ID().Bytes(),
		Kind:      kind,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}

	return c.db.WithContext(ctx).Create(&movement).Error
}
