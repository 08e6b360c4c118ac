// Package http is the inbound HTTP adapter: echo handlers that translate
// requests into commands and queries and domain errors into status codes.
package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	acceptBulkOrderHandler  commands.AcceptBulkOrderCommandHandler
	declineBulkOrderHandler commands.DeclineBulkOrderCommandHandler
	cancelBulkOrderHandler  commands.CancelBulkOrderCommandHandler
	updateStatusHandler     commands.UpdateBulkOrderStatusCommandHandler
	assignDeliveryHandler   commands.AssignDeliveryCommandHandler
	createCollabHandler     commands.CreateCollaborationRequestCommandHandler
	acceptCollabHandler     commands.AcceptCollaborationRequestCommandHandler
	rejectCollabHandler     commands.RejectCollaborationRequestCommandHandler
	deleteCollabHandler     commands.DeleteCollaborationRequestCommandHandler

	// Query handlers
	getBulkOrdersHandler      queries.GetBulkOrdersQueryHandler
	getBulkOrderStatsHandler  queries.GetBulkOrderStatsQueryHandler
	getAvailableChefsHandler  queries.GetAvailableChefsQueryHandler
	getIncomingCollabsHandler queries.GetIncomingCollaborationRequestsQueryHandler
	getOutgoingCollabsHandler queries.GetOutgoingCollaborationRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	acceptBulkOrderHandler commands.AcceptBulkOrderCommandHandler,
	declineBulkOrderHandler commands.DeclineBulkOrderCommandHandler,
	cancelBulkOrderHandler commands.CancelBulkOrderCommandHandler,
	updateStatusHandler commands.UpdateBulkOrderStatusCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	createCollabHandler commands.CreateCollaborationRequestCommandHandler,
	acceptCollabHandler commands.AcceptCollaborationRequestCommandHandler,
	rejectCollabHandler commands.RejectCollaborationRequestCommandHandler,
	deleteCollabHandler commands.DeleteCollaborationRequestCommandHandler,
	getBulkOrdersHandler queries.GetBulkOrdersQueryHandler,
	getBulkOrderStatsHandler queries.GetBulkOrderStatsQueryHandler,
	getAvailableChefsHandler queries.GetAvailableChefsQueryHandler,
	getIncomingCollabsHandler queries.GetIncomingCollaborationRequestsQueryHandler,
	getOutgoingCollabsHandler queries.GetOutgoingCollaborationRequestsQueryHandler,
) *Server {
	return &Server{
		acceptBulkOrderHandler:    acceptBulkOrderHandler,
		declineBulkOrderHandler:   declineBulkOrderHandler,
		cancelBulkOrderHandler:    cancelBulkOrderHandler,
		updateStatusHandler:       updateStatusHandler,
		assignDeliveryHandler:     assignDeliveryHandler,
		createCollabHandler:       createCollabHandler,
		acceptCollabHandler:       acceptCollabHandler,
		rejectCollabHandler:       rejectCollabHandler,
		deleteCollabHandler:       deleteCollabHandler,
		getBulkOrdersHandler:      getBulkOrdersHandler,
		getBulkOrderStatsHandler:  getBulkOrderStatsHandler,
		getAvailableChefsHandler:  getAvailableChefsHandler,
		getIncomingCollabsHandler: getIncomingCollabsHandler,
		getOutgoingCollabsHandler: getOutgoingCollabsHandler,
	}
}

// RegisterRoutes mounts all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/bulk-orders", s.GetBulkOrders)
	v1.GET("/bulk-orders/stats", s.GetBulkOrderStats)
	v1.POST("/bulk-orders/:id/accept", s.AcceptBulkOrder)
	v1.POST("/bulk-orders/:id/decline", s.DeclineBulkOrder)
	v1.POST("/bulk-orders/:id/cancel", s.CancelBulkOrder)
	v1.POST("/bulk-orders/:id/status", s.UpdateBulkOrderStatus)
	v1.POST("/bulk-orders/:id/assign-delivery", s.AssignDelivery)
	v1.POST("/bulk-orders/:id/collaborate", s.CreateCollaborationRequest)

	v1.GET("/chefs/available", s.GetAvailableChefs)

	v1.GET("/collaboration-requests/incoming/:chefId", s.GetIncomingCollaborationRequests)
	v1.GET("/collaboration-requests/outgoing/:chefId", s.GetOutgoingCollaborationRequests)
	v1.POST("/collaboration-requests/:id/accept", s.AcceptCollaborationRequest)
	v1.POST("/collaboration-requests/:id/reject", s.RejectCollaborationRequest)
	v1.DELETE("/collaboration-requests/:id", s.DeleteCollaborationRequest)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
