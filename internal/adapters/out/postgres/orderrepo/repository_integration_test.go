package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"tehnoplast/internal/adapters/out/postgres/orderrepo"
	"tehnoplast/internal/adapters/out/postgres/palletrepo"
	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/core/domain/model/pallet"
	"tehnoplast/internal/core/domain/model/product"
	"tehnoplast/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema. Pallet tables are needed because the
	// unpacked backlog query checks for existing plans.
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&palletrepo.PalletDTO{},
		&palletrepo.PalletItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, pallets, pallet_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1001", 14)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(testOrder.ItemsCount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1002", 7)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Number(), retrieved.Number())
	suite.Equal(testOrder.CounteragentINN(), retrieved.CounteragentINN())
	suite.Equal(testOrder.WarehouseGLN(), retrieved.WarehouseGLN())
	suite.Equal(testOrder.ItemsCount(), retrieved.ItemsCount())
	suite.Equal(testOrder.TotalQuantity(), retrieved.TotalQuantity())
	suite.True(testOrder.TotalAmount().Equal(retrieved.TotalAmount()))
	suite.True(testOrder.DeliveryDate().Equal(retrieved.DeliveryDate()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-3001", 7)
	other := suite.createTestOrder("ORD-3002", 7)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	retrieved, err := suite.repository.GetByNumber(ctx, "ORD-3001")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.ItemsCount(), retrieved.ItemsCount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_UnknownNumber_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByNumber(ctx, "ORD-9999")
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_DeletedOrder_NotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-3003", 7)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(suite.repository.SoftDelete(ctx, testOrder.ID()))

	_, err := suite.repository.GetByNumber(ctx, "ORD-3003")
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistingOrder_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1003", 10)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Rebuild the aggregate with an extra line and a changed quantity
	firstItem := testOrder.Items()[0]
	changed, err := order.NewItem(
		firstItem.ID(), firstItem.ProductID(), firstItem.Quantity()+5, firstItem.UnitPrice())
	suite.Require().NoError(err)

	extra, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), 3, decimal.NewFromInt(75))
	suite.Require().NoError(err)

	updated, err := order.RestoreOrder(
		testOrder.ID(), testOrder.Number(), testOrder.OrderDate(), testOrder.DeliveryDate(),
		testOrder.CounteragentINN(), testOrder.WarehouseGLN(), []*order.Item{changed, extra})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.ItemsCount())
	suite.Equal(updated.TotalQuantity(), retrieved.TotalQuantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistingOrder_NotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1004", 5)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDeleteAndRestore() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1005", 9)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.SoftDelete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Deleted order should be invisible to reads")

	// The row itself is preserved
	suite.assertOrderCount(1)

	// Deleting again reports not found
	err = suite.repository.SoftDelete(ctx, testOrder.ID())
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)

	suite.Require().NoError(suite.repository.Restore(ctx, testOrder.ID()))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ItemsCount(), retrieved.ItemsCount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnpacked_OrdersByDeliveryDate() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	later := suite.createTestOrder("ORD-2002", 20)
	sooner := suite.createTestOrder("ORD-2001", 3)

	suite.Require().NoError(suite.repository.Add(ctx, later))
	suite.Require().NoError(suite.repository.Add(ctx, sooner))

	unpacked, err := suite.repository.GetUnpacked(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(unpacked, 2)
	suite.Equal(sooner.ID(), unpacked[0].ID(), "Earliest delivery date should come first")
	suite.Equal(later.ID(), unpacked[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnpacked_ExcludesPackedOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	packed := suite.createTestOrder("ORD-2003", 6)
	pending := suite.createTestOrder("ORD-2004", 8)

	suite.Require().NoError(suite.repository.Add(ctx, packed))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	// Give the first order a pallet plan
	plt, err := pallet.NewPallet(kernel.NewUUID(), packed.ID(), 100)
	suite.Require().NoError(err)
	line, err := pallet.NewItem(
		packed.Items()[0].ID(), 2, 4, product.GroupPlastic, decimal.NewFromInt(150))
	suite.Require().NoError(err)
	suite.Require().NoError(plt.Store(line))

	palletRepository := palletrepo.NewGormPalletRepository(suite.db, suite.tracker)
	suite.Require().NoError(palletRepository.SavePackingPlan(ctx, packed.ID(), []*pallet.Pallet{plt}))

	unpacked, err := suite.repository.GetUnpacked(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(unpacked, 1)
	suite.Equal(pending.ID(), unpacked[0].ID())
}

// createTestOrder creates a valid order with one line, delivered the given
// number of days after the order date.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string, daysToDelivery int) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 10, decimal.NewFromInt(150))
	suite.Require().NoError(err)

	inn, err := kernel.NewINN("7707083893")
	suite.Require().NoError(err)
	gln, err := kernel.NewGLN("4607034440008")
	suite.Require().NoError(err)

	orderDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	deliveryDate := orderDate.AddDate(0, 0, daysToDelivery)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, orderDate, deliveryDate, inn, gln, []*order.Item{item})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
