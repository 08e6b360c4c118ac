package queries_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/bulkorderrepo"
	"catering/internal/adapters/out/postgres/chefdir"
	"catering/internal/adapters/out/postgres/collabrepo"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the raw SQL read models against a
// real PostgreSQL database, seeded directly through the persistence DTOs.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&bulkorderrepo.BulkOrderDTO{},
		&bulkorderrepo.BulkOrderItemDTO{},
		&collabrepo.CollaborationRequestDTO{},
		&chefdir.ChefDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bulk_orders, bulk_order_items, collaboration_requests, chefs").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) seedOrder(orderNumber, status string, totalCents int64, createdAt time.Time) bulkorderrepo.BulkOrderDTO {
	dto := bulkorderrepo.BulkOrderDTO{
		ID:            uuid.New(),
		OrderNumber:   orderNumber,
		CustomerID:    uuid.New(),
		PrimaryChefID: uuid.New(),
		Collaborators: pq.StringArray{},
		Status:        status,
		OrderType:     "delivery",

		TotalAmountCents: totalCents,
		CreatedAt:        createdAt,
		Version:          1,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func (suite *QueriesIntegrationTestSuite) TestGetBulkOrders_FiltersAndOrders() {
	now := time.Now().UTC()
	suite.seedOrder("BULK-AAAA1111", "pending", 10000, now.Add(-2*time.Hour))
	suite.seedOrder("BULK-BBBB2222", "accepted", 20000, now.Add(-1*time.Hour))
	suite.seedOrder("BULK-CCCC3333", "pending", 30000, now)

	handler := queries.NewGetBulkOrdersQueryHandler(suite.db)

	// No filters: all three, newest first.
	query, err := queries.NewGetBulkOrdersQuery("", "")
	suite.Require().NoError(err)
	rows, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("BULK-CCCC3333", rows[0].OrderNumber)
	suite.Equal("BULK-AAAA1111", rows[2].OrderNumber)

	// Status filter.
	query, err = queries.NewGetBulkOrdersQuery("pending", "")
	suite.Require().NoError(err)
	rows, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(rows, 2)

	// Case-insensitive order number search.
	query, err = queries.NewGetBulkOrdersQuery("", "bbbb")
	suite.Require().NoError(err)
	rows, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("BULK-BBBB2222", rows[0].OrderNumber)
}

func (suite *QueriesIntegrationTestSuite) TestGetBulkOrderStats_CountsAndRevenue() {
	now := time.Now().UTC()
	suite.seedOrder("BULK-00000001", "pending", 10000, now)
	suite.seedOrder("BULK-00000002", "pending", 15000, now)
	suite.seedOrder("BULK-00000003", "accepted", 20000, now)
	suite.seedOrder("BULK-00000004", "collaborating", 25000, now)
	suite.seedOrder("BULK-00000005", "completed", 40000, now)
	suite.seedOrder("BULK-00000006", "cancelled", 99999, now)

	handler := queries.NewGetBulkOrderStatsQueryHandler(suite.db)

	stats, err := handler.Handle(context.Background(), queries.NewGetBulkOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(2, stats.Pending)
	suite.Equal(1, stats.Accepted)
	suite.Equal(1, stats.Collaborating)
	// Revenue excludes the cancelled order only.
	suite.Equal(int64(10000+15000+20000+25000+40000), stats.TotalRevenueCents)
}

func (suite *QueriesIntegrationTestSuite) TestGetAvailableChefs_CountsPrimaryAndCollaboratorWork() {
	busyChef := chefdir.ChefDTO{ID: uuid.New(), Name: "Asel"}
	helperChef := chefdir.ChefDTO{ID: uuid.New(), Name: "Bakyt"}
	idleChef := chefdir.ChefDTO{ID: uuid.New(), Name: "Chingiz"}
	suite.Require().NoError(suite.db.Create(&busyChef).Error)
	suite.Require().NoError(suite.db.Create(&helperChef).Error)
	suite.Require().NoError(suite.db.Create(&idleChef).Error)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		dto := suite.seedOrder("BULK-0000000"+string(rune('A'+i)), "preparing", 10000, now)
		suite.Require().NoError(suite.db.Model(&bulkorderrepo.BulkOrderDTO{}).
			Where("id = ?", dto.ID).
			Update("primary_chef_id", busyChef.ID).Error)
	}

	// The helper collaborates on one order; declined work never counts.
	collaborating := suite.seedOrder("BULK-0000000X", "collaborating", 10000, now)
	suite.Require().NoError(suite.db.Model(&bulkorderrepo.BulkOrderDTO{}).
		Where("id = ?", collaborating.ID).
		Update("collaborators", pq.StringArray{helperChef.ID.String()}).Error)
	declined := suite.seedOrder("BULK-0000000Y", "declined", 10000, now)
	suite.Require().NoError(suite.db.Model(&bulkorderrepo.BulkOrderDTO{}).
		Where("id = ?", declined.ID).
		Update("primary_chef_id", idleChef.ID).Error)

	handler := queries.NewGetAvailableChefsQueryHandler(suite.db)

	chefs, err := handler.Handle(context.Background(), queries.NewGetAvailableChefsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(chefs, 3)

	suite.Equal("Asel", chefs[0].Name)
	suite.Equal(3, chefs[0].ActiveOrders)
	suite.Equal(queries.AvailabilityModerate, chefs[0].Availability)

	suite.Equal("Bakyt", chefs[1].Name)
	suite.Equal(1, chefs[1].ActiveOrders)
	suite.Equal(queries.AvailabilityAvailable, chefs[1].Availability)

	suite.Equal("Chingiz", chefs[2].Name)
	suite.Equal(0, chefs[2].ActiveOrders)
	suite.Equal(queries.AvailabilityAvailable, chefs[2].Availability)
}

func (suite *QueriesIntegrationTestSuite) TestCollaborationRequestListings_ExcludeDeleted() {
	chefID := kernel.NewUUID()
	otherChefID := kernel.NewUUID()
	now := time.Now().UTC()

	seed := func(from, to kernel.UUID, status string, createdAt time.Time) collabrepo.CollaborationRequestDTO {
		dto := collabrepo.CollaborationRequestDTO{
			ID:               uuid.New(),
			BulkOrderID:      uuid.New(),
			FromChefID:       from.Bytes(),
			ToChefID:         to.Bytes(),
			Message:          "Wedding banquet, 200 covers",
			WorkDistribution: "You plate desserts",
			Status:           status,
			CreatedAt:        createdAt,
			Version:          1,
		}
		suite.Require().NoError(suite.db.Create(&dto).Error)
		return dto
	}

	seed(otherChefID, chefID, "pending", now.Add(-time.Minute))
	seed(otherChefID, chefID, "accepted", now)
	seed(otherChefID, chefID, "deleted", now)
	seed(chefID, otherChefID, "rejected", now)

	incoming, err := queries.NewGetIncomingCollaborationRequestsQueryHandler(suite.db).
		Handle(context.Background(), mustIncomingQuery(suite, chefID))
	suite.Require().NoError(err)
	suite.Require().Len(incoming, 2)
	suite.Equal("accepted", incoming[0].Status)
	suite.Equal("pending", incoming[1].Status)

	outgoing, err := queries.NewGetOutgoingCollaborationRequestsQueryHandler(suite.db).
		Handle(context.Background(), mustOutgoingQuery(suite, chefID))
	suite.Require().NoError(err)
	suite.Require().Len(outgoing, 1)
	suite.Equal("rejected", outgoing[0].Status)
}

func mustIncomingQuery(suite *QueriesIntegrationTestSuite, chefID kernel.UUID) queries.GetIncomingCollaborationRequestsQuery {
	query, err := queries.NewGetIncomingCollaborationRequestsQuery(chefID)
	suite.Require().NoError(err)
	return query
}

func mustOutgoingQuery(suite *QueriesIntegrationTestSuite, chefID kernel.UUID) queries.GetOutgoingCollaborationRequestsQuery {
	query, err := queries.NewGetOutgoingCollaborationRequestsQuery(chefID)
	suite.Require().NoError(err)
	return query
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
