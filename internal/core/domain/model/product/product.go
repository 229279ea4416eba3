package product

import (
	"errors"
	"fmt"

	"salesledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created through
	// the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// Product represents an item held in stock. Within the order lifecycle the
// product is mutated only by shipment recording, which decrements its stock
// by the quantity of each shipped order line.
//
// Product follows these invariants:
//   - Must have a positive integer identifier
//   - Must have a non-empty name
//   - Unit price must not be negative
//   - Stock cannot be negative at creation; it may go negative afterwards,
//     because shipment recording does not block on insufficient stock
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	// id is the unique identifier for the product
	id int

	// name is the product's display name
	name string

	// unitPrice is the current catalog price for one unit
	unitPrice decimal.Decimal

	// stock is the number of units currently on hand (may be negative if oversold)
	stock int

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product instance with validation. Stock must be
// non-negative at creation; oversell can only happen through DecrementStock.
//
// Parameters:
//   - id: Unique integer identifier (must be positive)
//   - name: Display name (must be non-empty)
//   - unitPrice: Catalog price for one unit (must not be negative)
//   - stock: Units on hand (must not be negative)
//
// Returns:
//   - *Product: The created product if all validations pass
//   - error: Validation error if any parameter is invalid
func NewProduct(id int, name string, unitPrice decimal.Decimal, stock int) (*Product, error) {
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}

	return RestoreProduct(id, name, unitPrice, stock)
}

// RestoreProduct reconstructs a Product from persisted state. Unlike NewProduct
// it accepts negative stock, which is a legal persisted state under the
// oversell policy.
func RestoreProduct(id int, name string, unitPrice decimal.Decimal, stock int) (*Product, error) {
	product := &Product{
		stock:         stock,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

// ID returns the product's unique identifier.
func (p *Product) ID() int {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price for one unit.
func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// Stock returns the number of units currently on hand.
// The value is negative when the product has been oversold.
func (p *Product) Stock() int {
	return p.stock
}

// DecrementStock reduces the stock by the given quantity when an order line is
// shipped. The quantity must be positive. Stock is allowed to go negative:
// shipment recording never blocks on insufficient stock, overselling is a
// deliberate ledger policy surfaced through the resulting negative value.
func (p *Product) DecrementStock(quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock -= quantity
	return nil
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

// setName validates and sets the product's display name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

// setUnitPrice validates and sets the product's unit price.
// This is a private method used only during construction.
func (p *Product) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice))
	}
	p.unitPrice = unitPrice
	return nil
}
