// Package ports defines repository and transaction interfaces for the sales
// ledger core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"salesledger/internal/core/domain/model/customer"
)

// CustomerRepository defines the read-only persistence contract for customer
// records. The order lifecycle never mutates customers; it only looks them up
// to decide discounts and snapshot addresses.
type CustomerRepository interface {
	// Get retrieves a customer by its string identifier.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id string) (*customer.Customer, error)
}
