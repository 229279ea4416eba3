package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnshippedOrdersQueryHandler retrieves orders awaiting shipment from the database.
// Filters out shipped orders to provide the open fulfillment workload.
//
// Example:
//
//	handler := NewGetUnshippedOrdersQueryHandler(db)
//	query := NewGetUnshippedOrdersQuery()
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unshipped orders: %v", err)
//	    return err
//	}
//
//	if len(pending) > 0 {
//	    fmt.Printf("%d orders awaiting shipment\n", len(pending))
//	}
type GetUnshippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnshippedOrdersQueryHandler creates a handler for unshipped order queries.
// Requires a GORM database connection for query execution.
func NewGetUnshippedOrdersQueryHandler(db *gorm.DB) GetUnshippedOrdersQueryHandler {
	return GetUnshippedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders without a shipped date.
// Results are sorted by placement date so the oldest orders come first.
func (h GetUnshippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnshippedOrdersQuery,
) ([]GetUnshippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnshippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			placed_at,
			shipping_city
		FROM orders
		WHERE shipped_at IS NULL
		ORDER BY placed_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnshippedOrdersQueryResponse

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.CustomerID,
			&orderResp.PlacedAt,
			&orderResp.ShippingCity,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
