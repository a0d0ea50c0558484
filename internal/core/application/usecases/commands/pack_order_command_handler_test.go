package commands_test

import (
	"errors"
	"testing"

	"tehnoplast/internal/core/application/usecases/commands"
	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPacker(t *testing.T) *services.Packer {
	t.Helper()
	p, err := services.NewPacker(services.DefaultPackerConfig())
	require.NoError(t, err)
	return p
}

func TestNewPackOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewPackOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		_, err := commands.NewPackOrderCommand(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		cmd := commands.PackOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrPackOrderCommandIsNotConstructed)
	})
}

func TestPackOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := testOrder(t, productID)
	cmd, err := commands.NewPackOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	palletRepo := new(MockPalletRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", ctx, []kernel.UUID{productID}).
			Return(map[kernel.UUID]*product.Product{productID: testProduct(t, productID)}, nil).Once(),
		uow.On("PalletRepository").Return(palletRepo).Once(),
		palletRepo.On("SavePackingPlan", ctx, aggregate.ID(), mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory, testPacker(t))
	plan, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, plan)
	require.Len(t, plan.Pallets, 1)
	assert.Empty(t, plan.Remainders)
	palletRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_MissingProductAbortsBeforeSave(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := testOrder(t, productID)
	cmd, err := commands.NewPackOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	palletRepo := new(MockPalletRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", ctx, []kernel.UUID{productID}).
			Return(map[kernel.UUID]*product.Product{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory, testPacker(t))
	plan, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrProductNotFound)
	assert.Nil(t, plan)
	palletRepo.AssertNotCalled(t, "SavePackingPlan", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := testOrder(t, productID)
	cmd, err := commands.NewPackOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	palletRepo := new(MockPalletRepository)

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", ctx, []kernel.UUID{productID}).
			Return(map[kernel.UUID]*product.Product{productID: testProduct(t, productID)}, nil).Once(),
		uow.On("PalletRepository").Return(palletRepo).Once(),
		palletRepo.On("SavePackingPlan", ctx, aggregate.ID(), mock.Anything).
			Return(errors.New("save error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory, testPacker(t))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
