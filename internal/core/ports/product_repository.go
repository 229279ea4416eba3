package ports

import (
	"context"

	"salesledger/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product records.
// The order lifecycle reads products to capture unit prices at order creation
// and writes them to apply stock decrements at shipment.
type ProductRepository interface {
	// Get retrieves a product by its integer identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id int) (*product.Product, error)

	// GetForUpdate retrieves a product by its integer identifier with a
	// row-level lock held until the surrounding transaction ends. Stock
	// decrements read through this lock so concurrent shipments touching the
	// same product apply in sequence instead of overwriting each other.
	// Returns an ObjectNotFoundError when no such product exists.
	GetForUpdate(ctx context.Context, id int) (*product.Product, error)

	// Update persists changes to an existing product, primarily its stock level.
	// The product must already exist in the repository.
	Update(ctx context.Context, aggregate *product.Product) error
}
