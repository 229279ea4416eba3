package ports

import (
	"context"

	"salesledger/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders and their lines are stored as one unit: creation cascades to lines,
// retrieval rehydrates the complete aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate and its lines as one atomic unit.
	// Storage assigns the integer identifier; the returned aggregate carries it.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate, primarily the
	// shipped-date transition. Lines are immutable and are not rewritten.
	// The order must exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier, including all lines.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but locks the order row for the
	// duration of the surrounding transaction. Shipment recording uses it as the
	// single-writer gate: two concurrent shipments of the same order serialize
	// on the lock, and the loser observes the already-set shipped date.
	GetForUpdate(ctx context.Context, id int) (*order.Order, error)
}
