package cmd

import (
	"log/slog"

	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/rabbitmq"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers are
// cheap value types, so they are built on demand rather than cached.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   *rabbitmq.Notifier
	dispatch   *rabbitmq.DeliveryDispatch
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	rabbit *rabbitmq.Connection,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   rabbitmq.NewNotifier(rabbit, logger),
		dispatch:   rabbitmq.NewDeliveryDispatch(rabbit),
		logger:     logger,
	}
}

func (c *CompositionRoot) bulkOrderUoWFactory() commands.BulkOrderUoWFactory {
	return FuncBulkOrderUoWFactory(func() commands.BulkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) collaborationRequestUoWFactory() commands.CollaborationRequestUoWFactory {
	return FuncCollaborationRequestUoWFactory(func() commands.CollaborationRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAcceptBulkOrderCommandHandler() commands.AcceptBulkOrderCommandHandler {
	return commands.NewAcceptBulkOrderCommandHandler(c.bulkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeclineBulkOrderCommandHandler() commands.DeclineBulkOrderCommandHandler {
	return commands.NewDeclineBulkOrderCommandHandler(c.bulkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelBulkOrderCommandHandler() commands.CancelBulkOrderCommandHandler {
	return commands.NewCancelBulkOrderCommandHandler(c.bulkOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateBulkOrderStatusCommandHandler() commands.UpdateBulkOrderStatusCommandHandler {
	return commands.NewUpdateBulkOrderStatusCommandHandler(c.bulkOrderUoWFactory(), c.notifier, nil)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.bulkOrderUoWFactory(), c.dispatch)
}

func (c *CompositionRoot) CreateCreateCollaborationRequestCommandHandler() commands.CreateCollaborationRequestCommandHandler {
	return commands.NewCreateCollaborationRequestCommandHandler(c.crossAggregateUoWFactory(), c.notifier, nil)
}

func (c *CompositionRoot) CreateAcceptCollaborationRequestCommandHandler() commands.AcceptCollaborationRequestCommandHandler {
	return commands.NewAcceptCollaborationRequestCommandHandler(c.crossAggregateUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectCollaborationRequestCommandHandler() commands.RejectCollaborationRequestCommandHandler {
	return commands.NewRejectCollaborationRequestCommandHandler(c.collaborationRequestUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeleteCollaborationRequestCommandHandler() commands.DeleteCollaborationRequestCommandHandler {
	return commands.NewDeleteCollaborationRequestCommandHandler(c.collaborationRequestUoWFactory())
}

func (c *CompositionRoot) CreateCancelStalePendingOrdersCommandHandler() commands.CancelStalePendingOrdersCommandHandler {
	return commands.NewCancelStalePendingOrdersCommandHandler(c.bulkOrderUoWFactory(), c.notifier, nil)
}

func (c *CompositionRoot) CreateGetBulkOrdersQueryHandler() queries.GetBulkOrdersQueryHandler {
	return queries.NewGetBulkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBulkOrderStatsQueryHandler() queries.GetBulkOrderStatsQueryHandler {
	return queries.NewGetBulkOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableChefsQueryHandler() queries.GetAvailableChefsQueryHandler {
	return queries.NewGetAvailableChefsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncomingCollaborationRequestsQueryHandler() queries.GetIncomingCollaborationRequestsQueryHandler {
	return queries.NewGetIncomingCollaborationRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOutgoingCollaborationRequestsQueryHandler() queries.GetOutgoingCollaborationRequestsQueryHandler {
	return queries.NewGetOutgoingCollaborationRequestsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAcceptBulkOrderCommandHandler(),
		c.CreateDeclineBulkOrderCommandHandler(),
		c.CreateCancelBulkOrderCommandHandler(),
		c.CreateUpdateBulkOrderStatusCommandHandler(),
		c.CreateAssignDeliveryCommandHandler(),
		c.CreateCreateCollaborationRequestCommandHandler(),
		c.CreateAcceptCollaborationRequestCommandHandler(),
		c.CreateRejectCollaborationRequestCommandHandler(),
		c.CreateDeleteCollaborationRequestCommandHandler(),
		c.CreateGetBulkOrdersQueryHandler(),
		c.CreateGetBulkOrderStatsQueryHandler(),
		c.CreateGetAvailableChefsQueryHandler(),
		c.CreateGetIncomingCollaborationRequestsQueryHandler(),
		c.CreateGetOutgoingCollaborationRequestsQueryHandler(),
	)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStalePendingOrdersCommandHandler(),
		config.StaleOrderWindow,
		c.logger,
	)
}

type FuncBulkOrderUoWFactory func() commands.BulkOrderUoW

func (f FuncBulkOrderUoWFactory) Create() commands.BulkOrderUoW {
	return f()
}

type FuncCollaborationRequestUoWFactory func() commands.CollaborationRequestUoW

func (f FuncCollaborationRequestUoWFactory) Create() commands.CollaborationRequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
