package order

import (
	"errors"
	"fmt"

	"salesledger/internal/pkg/errs"
	"salesledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when attempting to use an improperly initialized Line.
// Lines must be created using the NewLine constructor to ensure validity.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line represents a single order line: one product, a positive ordered
// quantity, and the unit price captured at order-creation time. Lines are
// owned by exactly one Order and are immutable after the order is created.
//
// The captured unit price is deliberately a copy: later catalog price changes
// never retroactively affect existing orders.
type Line struct { //nolint:recvcheck //using for validation
	productID int
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLine creates a new order line with validation.
//
// Parameters:
//   - productID: Identifier of the referenced product (must be positive)
//   - quantity: Ordered quantity (must be positive)
//   - unitPrice: Unit price captured at order time (must not be negative)
//
// Returns:
//   - Line: A valid line instance
//   - error: Validation error if any parameter is invalid
func NewLine(productID int, quantity int, unitPrice decimal.Decimal) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate checks if the Line was properly constructed using the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (l Line) ProductID() int {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the unit price captured at order-creation time.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Total returns the line total before discount: unit price times quantity.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
