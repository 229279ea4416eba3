package commands

import (
	"errors"
	"fmt"

	"salesledger/internal/pkg/guard"
)

var (
	ErrRecordShipmentCommandIsNotConstructed = errors.New(
		"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
	)
)

// RecordShipmentCommand represents a request to mark an order as shipped and
// decrement the stock of every ordered product.
//
// Example:
//
//	cmd, err := NewRecordShipmentCommand(99998)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment request: %w", err)
//	}
//
//	handler := NewRecordShipmentCommandHandler(uowFactory, clock.NewSystem())
//	shipped, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to record shipment: %w", err)
//	}
//	fmt.Printf("Order %d shipped on %s", shipped.ID(), shipped.ShippedAt())
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewRecordShipmentCommand creates a command to record the shipment of an order.
// Validates that the order identifier is positive.
func NewRecordShipmentCommand(orderID int) (RecordShipmentCommand, error) {
	shipmentCommand := RecordShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentCommand.setOrderID(orderID); err != nil {
		return RecordShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordShipmentCommandIsNotConstructed if validation fails.
func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c RecordShipmentCommand) OrderID() int {
	return c.orderID
}

func (c *RecordShipmentCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return fmt.Errorf("order id %d is not greater than 0", orderID)
	}

	c.orderID = orderID
	return nil
}
