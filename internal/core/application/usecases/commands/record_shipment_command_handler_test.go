package commands_test

import (
	"errors"
	"testing"
	"time"

	"salesledger/internal/core/application/usecases/commands"
	"salesledger/internal/core/domain/model/order"
	"salesledger/internal/pkg/clock"
	"salesledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unshippedOrder(t *testing.T, id int, quantity int) *order.Order {
	t.Helper()
	buyer := largeCustomer(t)
	line, err := order.NewLine(98, quantity, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	placedAt := today.AddDate(0, 0, -3)
	restored, err := order.RestoreOrder(id, buyer.ID(), buyer.Tier().Discount(),
		buyer.Address(), []order.Line{line}, placedAt, nil)
	require.NoError(t, err)
	return restored
}

func shippedOrder(t *testing.T, id int, shippedAt time.Time) *order.Order {
	t.Helper()
	buyer := largeCustomer(t)
	line, err := order.NewLine(98, 10, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	placedAt := shippedAt.AddDate(0, 0, -5)
	restored, err := order.RestoreOrder(id, buyer.ID(), buyer.Tier().Discount(),
		buyer.Address(), []order.Line{line}, placedAt, &shippedAt)
	require.NoError(t, err)
	return restored
}

func TestRecordShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordShipmentCommand(99998)

	aggregate := unshippedOrder(t, 99998, 10)
	item := okraProduct(t, 25)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, 99998).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, 98).Return(item, nil).Once(),
		productRepo.On("Update", mock.Anything, item).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
	shipped, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, shipped)

	require.NotNil(t, shipped.ShippedAt())
	assert.Equal(t, today, *shipped.ShippedAt())
	assert.Equal(t, 15, item.Stock(), "stock must drop by the ordered quantity")

	productRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordShipmentCommandHandler_Handle_AlreadyShippedIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordShipmentCommand(99998)

	firstShipment := today.AddDate(0, 0, -2)
	aggregate := shippedOrder(t, 99998, firstShipment)

	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, 99998).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
	shipped, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, shipped)

	require.NotNil(t, shipped.ShippedAt())
	assert.Equal(t, firstShipment, *shipped.ShippedAt(), "shipped date must keep its first value")

	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordShipmentCommandHandler_Handle_StockMayGoNegative(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordShipmentCommand(99998)

	aggregate := unshippedOrder(t, 99998, 30)
	item := okraProduct(t, 25)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, 99998).Return(aggregate, nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("GetForUpdate", mock.Anything, 98).Return(item, nil).Once()
	productRepo.On("Update", mock.Anything, item).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, -5, item.Stock())
}

func TestRecordShipmentCommandHandler_Handle_SharedProductDecrementsAccumulate(t *testing.T) {
	ctx := t.Context()

	// Two different orders carry product 98 with quantity 10 each. The locked
	// read hands the second shipment the stock the first one committed, so the
	// decrements accumulate instead of the second write clobbering the first.
	item := okraProduct(t, 25)
	productRepo := new(MockProductRepository)
	productRepo.On("GetForUpdate", mock.Anything, 98).Return(item, nil).Twice()
	productRepo.On("Update", mock.Anything, item).Return(nil).Twice()

	for _, orderID := range []int{99998, 99999} {
		cmd, err := commands.NewRecordShipmentCommand(orderID)
		require.NoError(t, err)
		aggregate := unshippedOrder(t, orderID, 10)

		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once()
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

		uow := new(MockShipmentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("ProductRepository").Return(productRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
		_, err = h.Handle(ctx, cmd)
		require.NoError(t, err)

		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	}

	assert.Equal(t, 5, item.Stock(), "both shipments' decrements must survive")
	productRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	productRepo.AssertExpectations(t)
}

func TestRecordShipmentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordShipmentCommand(424242)

	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, 424242).
			Return(nil, errs.NewObjectNotFoundError("orderId", 424242)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRecordShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)
	h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
	_, err := h.Handle(ctx, commands.RecordShipmentCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestRecordShipmentCommandHandler_Handle_ProductUpdateErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRecordShipmentCommand(99998)

	aggregate := unshippedOrder(t, 99998, 10)
	item := okraProduct(t, 25)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, 99998).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, 98).Return(item, nil).Once(),
		productRepo.On("Update", mock.Anything, item).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordShipmentCommandHandler(factory, clock.NewFixed(today))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
