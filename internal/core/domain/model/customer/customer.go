package customer

import (
	"errors"

	"salesledger/internal/core/domain/model/kernel"
	"salesledger/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
	// through the NewCustomer factory method. This ensures all customers are properly validated.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a customer record in the sales ledger. Within the order
// lifecycle the customer is a read-only collaborator: orders reference it by
// identifier and copy its address at creation time, they never mutate it.
//
// Customer follows these invariants:
//   - Must have a non-empty identifier
//   - Must have a non-empty company name
//   - Must have a valid tier classification
//   - Must have a valid address
//   - Can only be created through NewCustomer constructor
type Customer struct {
	// id is the unique identifier for the customer (e.g. "2COM")
	id string

	// name is the company name
	name string

	// tier is the size classification driving discount eligibility
	tier Tier

	// address is the customer's current postal address
	address kernel.Address

	// isConstructed ensures the customer was created via NewCustomer
	isConstructed bool
}

// NewCustomer creates a new Customer instance with validation. This is the only
// way to create a valid Customer, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique string identifier (must be non-empty)
//   - name: Company name (must be non-empty)
//   - tier: Size classification (must be Standard or Large)
//   - address: Current postal address (must be constructed via kernel.NewAddress)
//
// Returns:
//   - *Customer: The created customer if all validations pass
//   - error: Validation error if any parameter is invalid
func NewCustomer(id string, name string, tier Tier, address kernel.Address) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setTier(tier),
		customer.setAddress(address),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
// This prevents bypassing validation by directly instantiating the struct.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer's company name.
func (c *Customer) Name() string {
	return c.name
}

// Tier returns the customer's size classification.
func (c *Customer) Tier() Tier {
	return c.tier
}

// Address returns the customer's current postal address.
// Address is a value object, so the returned copy is independent
// of any later changes to the customer record.
func (c *Customer) Address() kernel.Address {
	return c.address
}

// setID validates and sets the customer's unique identifier.
// This is a private method used only during construction.
func (c *Customer) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.id = id
	return nil
}

// setName validates and sets the customer's company name.
// This is a private method used only during construction.
func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

// setTier validates and sets the customer's size classification.
// This is a private method used only during construction.
func (c *Customer) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	c.tier = tier
	return nil
}

// setAddress validates and sets the customer's address.
// This is a private method used only during construction.
func (c *Customer) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
