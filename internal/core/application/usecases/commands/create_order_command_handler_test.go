package commands_test

import (
	"errors"
	"testing"
	"time"

	"tehnoplast/internal/core/application/usecases/commands"
	"tehnoplast/internal/core/domain/model/counteragent"
	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/core/domain/model/warehouse"
	"tehnoplast/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCounteragent(t *testing.T) *counteragent.Counteragent {
	t.Helper()
	c, err := counteragent.NewCounteragent(testINN(t), "Tehnoplast LLC")
	require.NoError(t, err)
	return c
}

func testWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(testGLN(t), "1 Industrial St", "Moscow Region")
	require.NoError(t, err)
	return w
}

func createOrderCommand(t *testing.T, productID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	orderDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	lines := []commands.OrderLine{
		{ProductID: productID, Quantity: 10, UnitPrice: decimal.NewFromInt(25)},
	}
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD-2026-001", orderDate, orderDate.AddDate(0, 0, 10),
		testINN(t), testGLN(t), lines)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := createOrderCommand(t, productID)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	counteragentRepo := new(MockCounteragentRepository)
	warehouseRepo := new(MockWarehouseRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounteragentRepository").Return(counteragentRepo).Once(),
		counteragentRepo.On("Get", ctx, cmd.CounteragentINN()).Return(testCounteragent(t), nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, cmd.WarehouseGLN()).Return(testWarehouse(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", ctx, []kernel.UUID{productID}).
			Return(map[kernel.UUID]*product.Product{productID: testProduct(t, productID)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownCounteragent(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t, kernel.NewUUID())

	counteragentRepo := new(MockCounteragentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounteragentRepository").Return(counteragentRepo).Once(),
		counteragentRepo.On("Get", ctx, cmd.CounteragentINN()).
			Return(nil, errs.NewObjectNotFoundError("inn", cmd.CounteragentINN().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := createOrderCommand(t, productID)

	productRepo := new(MockProductRepository)
	counteragentRepo := new(MockCounteragentRepository)
	warehouseRepo := new(MockWarehouseRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CounteragentRepository").Return(counteragentRepo).Once(),
		counteragentRepo.On("Get", ctx, cmd.CounteragentINN()).Return(testCounteragent(t), nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, cmd.WarehouseGLN()).Return(testWarehouse(t), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", ctx, []kernel.UUID{productID}).
			Return(map[kernel.UUID]*product.Product{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := createOrderCommand(t, kernel.NewUUID())

	uow := new(MockUoW)
	factory := new(MockCreateOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
