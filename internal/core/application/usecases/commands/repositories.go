// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"salesledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CreateOrderUoW manages transactions for order creation. Creation reads the
	// customer (discount, address snapshot) and the referenced products (price
	// capture), then writes the order aggregate, all in one transaction.
	CreateOrderUoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CreateOrderUoWFactory creates new unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ShipmentUoW manages transactions for shipment recording. Shipment writes
	// the order's shipped date and the stock decrement of every referenced
	// product as a single consistent unit.
	ShipmentUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// ShipmentUoWFactory creates new unit of work instances for shipment recording.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
