package queries

import (
	"context"
	"database/sql"
	"errors"

	"salesledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its lines from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(99998)
//
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return fmt.Errorf("no such order")
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order and all its lines.
// The response total applies the order's discount to the sum of line totals.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			placed_at,
			shipped_at,
			discount,
			shipping_street,
			shipping_city,
			shipping_country
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.PlacedAt,
		&resp.ShippedAt,
		&resp.Discount,
		&resp.ShippingStreet,
		&resp.ShippingCity,
		&resp.ShippingCountry,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	gross := decimal.Zero
	for rows.Next() {
		var line GetOrderQueryLineResponse

		err = rows.Scan(
			&line.ProductID,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		gross = gross.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Total = gross.Mul(decimal.NewFromInt(1).Sub(resp.Discount))
	return resp, nil
}
