package queries

import (
	"errors"
	"fmt"
	"time"

	"salesledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its lines.
// Returns the full order detail including the shipping address snapshot
// and the captured line prices.
//
// Example:
//
//	query, err := NewGetOrderQuery(99998)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %d total: %s\n", detail.ID, detail.Total)
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by identifier.
// Validates that the order identifier is positive.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, fmt.Errorf("order id %d is not greater than 0", orderID)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// GetOrderQueryResponse represents the full detail of a single order.
type GetOrderQueryResponse struct {
	ID              int
	CustomerID      string
	PlacedAt        time.Time
	ShippedAt       *time.Time
	Discount        decimal.Decimal
	ShippingStreet  string
	ShippingCity    string
	ShippingCountry string
	Lines           []GetOrderQueryLineResponse
	Total           decimal.Decimal
}

// GetOrderQueryLineResponse represents one line of an order detail.
// UnitPrice is the price captured when the order was placed, not the
// product's current price.
type GetOrderQueryLineResponse struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}
