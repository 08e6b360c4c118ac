package bulkorderrepo_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/bulkorderrepo"
	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// BulkOrderRepositoryIntegrationTestSuite provides integration tests for
// GormBulkOrderRepository using a PostgreSQL container.
type BulkOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bulkorderrepo.GormBulkOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&bulkorderrepo.BulkOrderDTO{}, &bulkorderrepo.BulkOrderItemDTO{})
	suite.Require().NoError(err)
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bulk_orders, bulk_order_items").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bulkorderrepo.NewGormBulkOrderRepository(suite.db, suite.tracker)
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) newTestOrder(createdAt time.Time) *bulkorder.BulkOrder {
	item, err := bulkorder.NewItem("Lamb tagine tray", 3, 4500)
	suite.Require().NoError(err)

	order, err := bulkorder.NewBulkOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		bulkorder.Delivery, time.Time{}, []bulkorder.Item{item}, createdAt,
	)
	suite.Require().NoError(err)
	return order
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	order := suite.newTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", order.ID(), order).Once()

	err := suite.repository.Add(ctx, order)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(order))
	suite.Equal(order.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(bulkorder.Pending, retrieved.Status())
	suite.Equal(order.TotalAmountCents(), retrieved.TotalAmountCents())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal("Lamb tagine tray", retrieved.Items()[0].Name())
	suite.Equal(1, retrieved.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndBumpsVersion() {
	ctx := context.Background()
	order := suite.newTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", order.ID(), order).Twice()

	err := suite.repository.Add(ctx, order)
	suite.Require().NoError(err)

	err = order.Accept(order.PrimaryChefID(), "Happy to cater this")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, order)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(bulkorder.Accepted, retrieved.Status())
	suite.Equal("Happy to cater this", retrieved.ChefNote())
	suite.Equal(2, retrieved.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_LosesRace() {
	ctx := context.Background()
	order := suite.newTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	err := suite.repository.Add(ctx, order)
	suite.Require().NoError(err)

	// Two actors load the same row.
	first, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)

	// First wins the accept.
	suite.Require().NoError(first.Accept(first.PrimaryChefID(), ""))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second's decline carries a stale version and must fail.
	suite.Require().NoError(second.Decline(second.PrimaryChefID(), "changed my mind"))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.StateConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	retrieved, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(bulkorder.Accepted, retrieved.Status())
	suite.Empty(retrieved.DeclineReason())
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsCollaborators() {
	ctx := context.Background()
	order := suite.newTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", order.ID(), order).Twice()

	err := suite.repository.Add(ctx, order)
	suite.Require().NoError(err)

	collaborator := kernel.NewUUID()
	suite.Require().NoError(order.Accept(order.PrimaryChefID(), ""))
	suite.Require().NoError(order.AcceptCollaboration(collaborator))

	err = suite.repository.Update(ctx, order)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(bulkorder.Collaborating, retrieved.Status())
	suite.Require().Len(retrieved.Collaborators(), 1)
	suite.True(retrieved.Collaborators()[0].IsEqual(collaborator))
}

func (suite *BulkOrderRepositoryIntegrationTestSuite) TestGetAllPendingCreatedBefore() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	now := time.Now().UTC()
	staleOrder := suite.newTestOrder(now.Add(-48 * time.Hour))
	freshOrder := suite.newTestOrder(now.Add(-time.Hour))
	acceptedStale := suite.newTestOrder(now.Add(-48 * time.Hour))
	suite.Require().NoError(acceptedStale.Accept(acceptedStale.PrimaryChefID(), ""))

	suite.Require().NoError(suite.repository.Add(ctx, staleOrder))
	suite.Require().NoError(suite.repository.Add(ctx, freshOrder))
	suite.Require().NoError(suite.repository.Add(ctx, acceptedStale))

	stale, err := suite.repository.GetAllPendingCreatedBefore(ctx, now.Add(-24*time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(stale, 1)
	suite.True(stale[0].IsEqual(staleOrder))
}

func TestBulkOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(BulkOrderRepositoryIntegrationTestSuite))
}
