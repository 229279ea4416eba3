package order

import (
	"errors"
	"fmt"
	"time"

	"salesledger/internal/core/domain/model/kernel"
	"salesledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the sales ledger. It is the aggregate
// root that manages the order lifecycle from creation through shipment.
//
// Order follows these invariants:
//   - Must reference the owning customer by identifier
//   - Carries a discount rate in [0, 1) decided at creation from the customer tier
//   - Carries a shipping-address snapshot: a value copy of the customer's
//     address at creation time, independent of later customer edits
//   - Owns an immutable, non-empty sequence of lines
//   - The shipped date transitions exactly once from unset to a concrete date
//   - The integer identifier is assigned by storage on creation; a new order
//     has identifier zero until persisted
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the storage-assigned identifier (zero until the order is persisted)
	id int

	// customerID references the owning customer
	customerID string

	// placedAt is the order creation date
	placedAt time.Time

	// shippedAt is the shipment date (nil while the order is unshipped)
	shippedAt *time.Time

	// discount is the rate applied to the order, e.g. 0.15
	discount decimal.Decimal

	// shippingAddress is the snapshot of the customer's address at creation time
	shippingAddress kernel.Address

	// lines is the ordered sequence of order lines
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new, not-yet-persisted Order with validation. The
// identifier stays zero until storage assigns one, and the shipped date
// starts unset.
//
// Parameters:
//   - customerID: Identifier of the owning customer (must be non-empty)
//   - discount: Discount rate from the customer tier (must be in [0, 1))
//   - shippingAddress: Value copy of the customer's address at creation time
//   - lines: Order lines (must contain at least one constructed line)
//   - placedAt: Creation date supplied by the injected clock
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	customerID string,
	discount decimal.Decimal,
	shippingAddress kernel.Address,
	lines []Line,
	placedAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setDiscount(discount),
		order.setShippingAddress(shippingAddress),
		order.setLines(lines),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, including its
// storage-assigned identifier and an optional shipped date.
// Used by repositories when rehydrating aggregates; the same invariants as
// NewOrder apply, plus the identifier must be positive.
func RestoreOrder(
	id int,
	customerID string,
	discount decimal.Decimal,
	shippingAddress kernel.Address,
	lines []Line,
	placedAt time.Time,
	shippedAt *time.Time,
) (*Order, error) {
	order, err := NewOrder(customerID, discount, shippingAddress, lines, placedAt)
	if err != nil {
		return nil, err
	}

	if err = order.setID(id); err != nil {
		return nil, err
	}

	if shippedAt != nil {
		at := *shippedAt
		order.shippedAt = &at
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their storage-assigned identifiers.
// Orders that have not been persisted yet (identifier zero) are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the storage-assigned identifier, or zero for an unpersisted order.
func (o *Order) ID() int {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// PlacedAt returns the order creation date.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ShippedAt returns the shipment date, or nil while the order is unshipped.
// The returned pointer refers to a copy, so callers cannot mutate the aggregate.
func (o *Order) ShippedAt() *time.Time {
	if o.shippedAt == nil {
		return nil
	}
	at := *o.shippedAt
	return &at
}

// IsShipped reports whether the shipment date has been set.
func (o *Order) IsShipped() bool {
	return o.shippedAt != nil
}

// Discount returns the discount rate applied to the order.
func (o *Order) Discount() decimal.Decimal {
	return o.discount
}

// ShippingAddress returns the shipping-address snapshot taken at creation time.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// Lines returns a copy of the order's line sequence in creation order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the order total: the sum of all line totals with the order
// discount applied.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total.Mul(decimal.NewFromInt(1).Sub(o.discount))
}

// RecordShipment marks the order as shipped on the given date.
//
// This method enforces the following business rules:
//   - The shipment date must be a concrete, non-zero date
//   - The shipped-date transition happens exactly once: recording shipment on
//     an already-shipped order is a no-op, reported through the boolean result
//     so callers skip the stock decrement instead of applying it twice
//
// Returns:
//   - (true, nil) when the order transitioned from unshipped to shipped
//   - (false, nil) when the order was already shipped (state is unchanged)
//   - (false, error) when the order or date is invalid
func (o *Order) RecordShipment(shippedAt time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if shippedAt.IsZero() {
		return false, errs.NewValueIsRequiredError("shippedAt")
	}

	if o.shippedAt != nil {
		return false, nil
	}

	at := shippedAt
	o.shippedAt = &at
	return true, nil
}

// setID validates and sets the storage-assigned identifier.
// This is a private method used only during restoration.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

// setDiscount validates and sets the discount rate.
// This is a private method used only during construction.
func (o *Order) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errs.NewValueIsInvalidErrorWithCause("discount is invalid",
			fmt.Errorf("%s is not in [0, 1)", discount))
	}
	o.discount = discount
	return nil
}

// setShippingAddress validates and sets the shipping-address snapshot.
// This is a private method used only during construction.
func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

// setLines validates and sets the line sequence. The slice is copied so the
// aggregate owns its lines.
// This is a private method used only during construction.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setPlacedAt validates and sets the order creation date.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
