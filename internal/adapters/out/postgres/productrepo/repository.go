package productrepo

import (
	"context"
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/product"
	"medorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product together with a zero stock record.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	stock := StockDTO{ProductID: dto.ID}
	if err := r.db.WithContext(ctx).Create(&stock).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStock retrieves the stock record for a product.
func (r *GormProductRepository) GetStock(ctx context.Context, productID kernel.UUID) (product.Stock, error) {
	if err := productID.Validate(); err != nil {
		return product.Stock{}, err
	}

	var dto StockDTO
	err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Stock{}, errs.NewObjectNotFoundError("stock", productID.String())
		}
		return product.Stock{}, err
	}

	return stockToDomain(dto)
}

// SaveStock replaces a product's stock record. Used for receiving shipments
// and seeding, not by the order lifecycle.
func (r *GormProductRepository) SaveStock(ctx context.Context, stock product.Stock) error {
	if err := stock.ProductID.Validate(); err != nil {
		return err
	}

	dto := stockFromDomain(stock)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"available", "reserved"}),
		}).
		Create(&dto).Error
}
