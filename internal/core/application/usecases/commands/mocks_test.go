package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tehnoplast/internal/core/application/usecases/commands"
	"tehnoplast/internal/core/domain/model/counteragent"
	"tehnoplast/internal/core/domain/model/invoice"
	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/core/domain/model/pallet"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/core/domain/model/warehouse"
	"tehnoplast/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetUnpacked(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) Restore(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error    { return nil }
func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error { return nil }
func (m *MockProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetByInternalSKU(_ context.Context, _ string) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) GetByInternalBarcode(_ context.Context, _ string) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) GetByExternalCode(_ context.Context, _ string) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPalletRepository struct{ mock.Mock }

func (m *MockPalletRepository) SavePackingPlan(
	ctx context.Context, orderID kernel.UUID, pallets []*pallet.Pallet,
) error {
	args := m.Called(ctx, orderID, pallets)
	return args.Error(0)
}
func (m *MockPalletRepository) GetByOrderID(_ context.Context, _ kernel.UUID) ([]*pallet.Pallet, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPalletRepository) ExistsForOrder(_ context.Context, _ kernel.UUID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockCounteragentRepository struct{ mock.Mock }

func (m *MockCounteragentRepository) Add(_ context.Context, _ *counteragent.Counteragent) error {
	return nil
}
func (m *MockCounteragentRepository) Update(_ context.Context, _ *counteragent.Counteragent) error {
	return nil
}
func (m *MockCounteragentRepository) Get(
	ctx context.Context, inn kernel.INN,
) (*counteragent.Counteragent, error) {
	args := m.Called(ctx, inn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*counteragent.Counteragent), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(_ context.Context, _ *warehouse.Warehouse) error    { return nil }
func (m *MockWarehouseRepository) Update(_ context.Context, _ *warehouse.Warehouse) error { return nil }
func (m *MockWarehouseRepository) Get(
	ctx context.Context, gln kernel.GLN,
) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, gln)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(_ context.Context, _ kernel.UUID) (*invoice.Invoice, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInvoiceRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*invoice.Invoice, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInvoiceRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// MockUoW backs every unit-of-work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) PalletRepository() ports.PalletRepository {
	args := m.Called()
	return args.Get(0).(ports.PalletRepository)
}
func (m *MockUoW) CounteragentRepository() ports.CounteragentRepository {
	args := m.Called()
	return args.Get(0).(ports.CounteragentRepository)
}
func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}
func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockPackOrderUoWFactory struct{ mock.Mock }

func (m *MockPackOrderUoWFactory) Create() commands.PackOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PackOrderUoW)
}

type MockIssueInvoiceUoWFactory struct{ mock.Mock }

func (m *MockIssueInvoiceUoWFactory) Create() commands.IssueInvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.IssueInvoiceUoW)
}

// Test fixtures shared by the handler tests.

func testINN(t *testing.T) kernel.INN {
	t.Helper()
	inn, err := kernel.NewINN("7707083893")
	require.NoError(t, err)
	return inn
}

func testGLN(t *testing.T) kernel.GLN {
	t.Helper()
	gln, err := kernel.NewGLN("4607034440008")
	require.NoError(t, err)
	return gln
}

func testOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productID, 10, decimal.NewFromInt(20))
	require.NoError(t, err)

	orderDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, orderDate.AddDate(0, 0, 10),
		testINN(t), testGLN(t), []*order.Item{item})
	require.NoError(t, err)
	return o
}

func testProduct(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Bucket 10L", "4600000000017", "BKT-10",
		product.GroupPlastic, 2.5)
	require.NoError(t, err)
	return p
}
