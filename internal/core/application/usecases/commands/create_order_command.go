package commands

import (
	"errors"
	"fmt"

	"salesledger/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrLinesAreRequired     = errors.New("at least one order line is required")
)

// OrderLineRequest describes one requested order line: which product and how
// many units. The unit price is not part of the request; it is captured from
// the product record inside the creation transaction.
type OrderLineRequest struct {
	ProductID int
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order for a customer.
// The line sequence comes from the caller (the cart collaborator); the command
// only guarantees that every requested line names a product and a positive
// quantity.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("2COM", []OrderLineRequest{{ProductID: 98, Quantity: 10}})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.NewSystem())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created with discount %s", created.ID(), created.Discount())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []OrderLineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer identifier is non-empty and that every requested
// line references a positive product identifier with a positive quantity.
// Returns an error if any validation fails.
func NewCreateOrderCommand(customerID string, lines []OrderLineRequest) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLineRequest {
	lines := make([]OrderLineRequest, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for i, line := range lines {
		if line.ProductID <= 0 {
			return fmt.Errorf("line %d: product id %d is not greater than 0", i, line.ProductID)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity %d is not greater than 0", i, line.Quantity)
		}
	}

	c.lines = make([]OrderLineRequest, len(lines))
	copy(c.lines, lines)
	return nil
}
