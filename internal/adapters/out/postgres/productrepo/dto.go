// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"salesledger/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Stock may be negative when oversold shipments have been recorded.
type ProductDTO struct {
	ID        int             `gorm:"primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock     int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:        product.ID(),
		Name:      product.Name(),
		UnitPrice: product.UnitPrice(),
		Stock:     product.Stock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Uses RestoreProduct so persisted negative stock levels load back intact.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.UnitPrice, dto.Stock)
}
