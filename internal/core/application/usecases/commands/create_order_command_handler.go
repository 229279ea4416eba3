package commands

import (
	"context"

	"salesledger/internal/core/domain/model/order"
	"salesledger/internal/pkg/clock"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Fetches the customer to decide the discount and snapshot the shipping
// address, captures unit prices from the referenced products, and persists
// the new aggregate in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.NewSystem())
//	cmd, _ := NewCreateOrderCommand("2COM", []OrderLineRequest{{ProductID: 98, Quantity: 10}})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() now carries the storage-assigned order number
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence and a clock
// for the order creation date.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the order creation command.
//
// The discount rate comes from the customer's tier classification, the
// shipping address is a value copy of the customer's address at this moment,
// and each line captures the referenced product's current unit price. The
// order and its lines are persisted as one atomic unit; the returned aggregate
// carries the storage-assigned identifier and an unset shipped date.
//
// Returns an ObjectNotFoundError when the customer or any referenced product
// does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, request := range cmd.Lines() {
		item, productErr := productRepo.Get(ctx, request.ProductID)
		if productErr != nil {
			return nil, productErr
		}

		line, lineErr := order.NewLine(item.ID(), request.Quantity, item.UnitPrice())
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(
		buyer.ID(),
		buyer.Tier().Discount(),
		buyer.Address(),
		lines,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	created, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
