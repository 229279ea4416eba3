package commands

import (
	"context"

	"salesledger/internal/core/domain/model/order"
	"salesledger/internal/pkg/clock"
)

// RecordShipmentCommandHandler handles the business logic for shipment recording.
// Sets the order's shipped date and decrements the stock of every referenced
// product within a single transaction.
//
// Shipment policy:
//   - Re-recording shipment of an already-shipped order is a no-op that
//     returns the existing state; stock is never decremented twice.
//   - Stock is allowed to go negative: shipment never blocks on insufficient
//     stock, an oversold quantity simply shows up as negative stock.
//
// Example:
//
//	handler := NewRecordShipmentCommandHandler(uowFactory, clock.NewSystem())
//	cmd, _ := NewRecordShipmentCommand(99998)
//
//	shipped, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment failed: %w", err)
//	}
//	// shipped.ShippedAt() is now today; product 98's stock dropped by the line quantity
type RecordShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      clock.Clock
}

// NewRecordShipmentCommandHandler creates a handler for shipment recording operations.
// Requires a ShipmentUoWFactory for transactional persistence and a clock for
// the shipment date.
func NewRecordShipmentCommandHandler(uowFactory ShipmentUoWFactory, clk clock.Clock) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the shipment recording command.
//
// The order row is read with a row-level lock so concurrent shipments of the
// same order serialize: the second caller observes the already-set shipped
// date and takes the no-op path without touching stock. Each product row is
// likewise read with a row-level lock, so shipments of different orders that
// share a product apply their decrements in sequence rather than overwriting
// each other from stale reads. Stock updates and the shipped-date transition
// commit as one unit; on any error the transaction rolls back and no partial
// decrement survives.
//
// Returns an ObjectNotFoundError when the order does not exist.
func (h RecordShipmentCommandHandler) Handle(ctx context.Context, cmd RecordShipmentCommand) (*order.Order, error) {
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

	ordersRepo := uow.OrderRepository()
	aggregate, err := ordersRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	shipped, err := aggregate.RecordShipment(h.clock.Now())
	if err != nil {
		return nil, err
	}
	if !shipped {
		// Already shipped: release the lock and report the existing state.
		return aggregate, nil
	}

	productRepo := uow.ProductRepository()
	for _, line := range aggregate.Lines() {
		item, productErr := productRepo.GetForUpdate(ctx, line.ProductID())
		if productErr != nil {
			return nil, productErr
		}

		if decrementErr := item.DecrementStock(line.Quantity()); decrementErr != nil {
			return nil, decrementErr
		}

		if updateErr := productRepo.Update(ctx, item); updateErr != nil {
			return nil, updateErr
		}
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
