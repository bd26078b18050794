// Package productrepo provides persistence for products and their stock
// records.
package productrepo

import (
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU       string          `gorm:"uniqueIndex;size:64"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2)"`
	Active    bool            `gorm:"index"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// StockDTO represents a product's stock record. Available and Reserved are
// mutated only by the inventory coordinator's conditional updates, never
// through plain saves from the order lifecycle.
type StockDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Available int
	Reserved  int
}

// TableName overrides GORM's default naming to use "product_stocks".
func (StockDTO) TableName() string {
	return "product_stocks"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		SKU:       aggregate.SKU(),
		Name:      aggregate.Name(),
		UnitPrice: aggregate.UnitPrice().Amount(),
		Active:    aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.SKU, dto.Name, unitPrice, dto.Active)
}

func stockFromDomain(stock product.Stock) StockDTO {
	return StockDTO{
		ProductID: stock.ProductID.Bytes(),
		Available: stock.Available,
		Reserved:  stock.Reserved,
	}
}

func stockToDomain(dto StockDTO) (product.Stock, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return product.Stock{}, err
	}

	return product.Stock{
		ProductID: productID,
		Available: dto.Available,
		Reserved:  dto.Reserved,
	}, nil
}
