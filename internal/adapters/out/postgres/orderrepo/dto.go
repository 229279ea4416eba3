// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"salesledger/internal/core/domain/model/kernel"
	"salesledger/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is assigned by the database sequence on insert. The shipping
// address columns hold the snapshot taken at order creation, not a reference
// to the customer's current address.
type OrderDTO struct {
	ID              int             `gorm:"primaryKey;autoIncrement"`
	CustomerID      string          `gorm:"type:varchar(5);not null;index"`
	PlacedAt        time.Time       `gorm:"not null"`
	ShippedAt       *time.Time      `gorm:"index"`
	Discount        decimal.Decimal `gorm:"type:numeric(4,3);not null"`
	ShippingAddress AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	Lines           []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(255);not null"`
	Country string `gorm:"type:varchar(255);not null"`
}

// LineDTO represents the database structure for persisting order lines.
// Links to the order via foreign key; a product may appear at most once
// per order, enforced by the composite unique index.
type LineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   int             `gorm:"not null;index;uniqueIndex:idx_order_lines_order_product"`
	ProductID int             `gorm:"not null;uniqueIndex:idx_order_lines_order_product"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero identifier is left for the database to fill on insert.
func fromDomain(order *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(order.Lines()))
	for _, line := range order.Lines() {
		lines = append(lines, LineDTO{
			ID:        uuid.New(),
			OrderID:   order.ID(),
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		PlacedAt:   order.PlacedAt(),
		ShippedAt:  order.ShippedAt(),
		Discount:   order.Discount(),
		ShippingAddress: AddressDTO{
			Street:  order.ShippingAddress().Street(),
			City:    order.ShippingAddress().City(),
			Country: order.ShippingAddress().Country(),
		},
		Lines: lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	address, err := kernel.NewAddress(
		dto.ShippingAddress.Street,
		dto.ShippingAddress.City,
		dto.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := order.NewLine(lineDto.ProductID, lineDto.Quantity, lineDto.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, dto.CustomerID, dto.Discount, address, lines, dto.PlacedAt, dto.ShippedAt)
}
