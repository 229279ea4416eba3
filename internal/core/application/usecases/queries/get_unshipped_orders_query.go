package queries

import (
	"errors"
	"time"

	"salesledger/internal/pkg/guard"
)

var (
	ErrGetUnshippedOrdersQueryIsNotConstructed = errors.New(
		"GetUnshippedOrdersQuery must be created via NewGetUnshippedOrdersQuery constructor",
	)
)

// GetUnshippedOrdersQuery retrieves all orders that have not been shipped yet.
// Returns orders with an empty shipped date for fulfillment monitoring.
//
// Example:
//
//	query := NewGetUnshippedOrdersQuery()
//	handler := NewGetUnshippedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unshipped orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting shipment\n", len(orders))
//	for _, o := range orders {
//	    fmt.Printf("Order %d for %s placed on %s\n", o.ID, o.CustomerID, o.PlacedAt)
//	}
type GetUnshippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnshippedOrdersQuery creates a query to retrieve unshipped orders.
// This is a parameterless query that fetches every order without a shipped date.
func NewGetUnshippedOrdersQuery() GetUnshippedOrdersQuery {
	return GetUnshippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnshippedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnshippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnshippedOrdersQueryIsNotConstructed)
}

// GetUnshippedOrdersQueryResponse represents an order awaiting shipment.
// Contains the data a fulfillment operator needs to pick the next order.
type GetUnshippedOrdersQueryResponse struct {
	ID           int
	CustomerID   string
	PlacedAt     time.Time
	ShippingCity string
}
