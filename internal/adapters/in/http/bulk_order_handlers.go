package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetBulkOrders handles GET /api/v1/bulk-orders - lists orders newest first,
// optionally filtered by ?status= and ?search=.
func (s *Server) GetBulkOrders(ctx echo.Context) error {
	query, err := queries.NewGetBulkOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("search"),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getBulkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BulkOrderListItem, 0, len(rows))
	for _, row := range rows {
		response = append(response, toBulkOrderListItem(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBulkOrderStats handles GET /api/v1/bulk-orders/stats.
func (s *Server) GetBulkOrderStats(ctx echo.Context) error {
	stats, err := s.getBulkOrderStatsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetBulkOrderStatsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BulkOrderStatsResponse{
		Pending:           stats.Pending,
		Accepted:          stats.Accepted,
		Collaborating:     stats.Collaborating,
		TotalRevenueCents: stats.TotalRevenueCents,
	})
}

// AcceptBulkOrder handles POST /api/v1/bulk-orders/:id/accept.
func (s *Server) AcceptBulkOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id", "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		ChefID string `json:"chef_id"`
		Note   string `json:"note"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	chefID, err := parseUUID(body.ChefID, "chef_id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewAcceptBulkOrderCommand(orderID, chefID, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.acceptBulkOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkOrderResponse(order))
}

// DeclineBulkOrder handles POST /api/v1/bulk-orders/:id/decline.
func (s *Server) DeclineBulkOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id", "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		ChefID string `json:"chef_id"`
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	chefID, err := parseUUID(body.ChefID, "chef_id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewDeclineBulkOrderCommand(orderID, chefID, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.declineBulkOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkOrderResponse(order))
}

// CancelBulkOrder handles POST /api/v1/bulk-orders/:id/cancel. The actor may
// be the primary chef or the customer; the domain decides.
func (s *Server) CancelBulkOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id", "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		ChefID string `json:"chef_id"`
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	actorID, err := parseUUID(body.ChefID, "chef_id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewCancelBulkOrderCommand(orderID, actorID, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.cancelBulkOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkOrderResponse(order))
}

// UpdateBulkOrderStatus handles POST /api/v1/bulk-orders/:id/status - the
// kitchen progression endpoint (preparing, ready_for_delivery, completed).
func (s *Server) UpdateBulkOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id", "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Target string `json:"target"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	target, err := bulkorder.StatusFromString(body.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewUpdateBulkOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.updateStatusHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkOrderResponse(order))
}

// AssignDelivery handles POST /api/v1/bulk-orders/:id/assign-delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id", "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewAssignDeliveryCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkOrderResponse(order))
}

// GetAvailableChefs handles GET /api/v1/chefs/available.
func (s *Server) GetAvailableChefs(ctx echo.Context) error {
	rows, err := s.getAvailableChefsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableChefsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AvailableChefResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, AvailableChefResponse{
			ID:           row.ID.String(),
			Name:         row.Name,
			ActiveOrders: row.ActiveOrders,
			BusyMinutes:  row.BusyMinutes,
			Availability: row.Availability,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(ctx echo.Context, param, name string) (kernel.UUID, error) {
	return parseUUID(ctx.Param(param), name)
}

// parseUUID wraps UUID parsing so malformed identifiers classify as
// validation errors rather than opaque parse failures.
func parseUUID(raw, name string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
