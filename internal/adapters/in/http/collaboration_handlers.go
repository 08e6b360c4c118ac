package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateCollaborationRequest handles POST /api/v1/bulk-orders/:id/collaborate.
// Returns 201 with the created request.
func (s *Server) CreateCollaborationRequest(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id", "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		FromChefID       string `json:"from_chef_id"`
		ToChefID         string `json:"to_chef_id"`
		Message          string `json:"message"`
		WorkDistribution string `json:"work_distribution"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	fromChefID, err := parseUUID(body.FromChefID, "from_chef_id")
	if err != nil {
		return writeError(ctx, err)
	}
	toChefID, err := parseUUID(body.ToChefID, "to_chef_id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewCreateCollaborationRequestCommand(
		kernel.NewUUID(), orderID, fromChefID, toChefID,
		body.Message, body.WorkDistribution,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	request, err := s.createCollabHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCollaborationRequestBody(request))
}

// GetIncomingCollaborationRequests handles
// GET /api/v1/collaboration-requests/incoming/:chefId.
func (s *Server) GetIncomingCollaborationRequests(ctx echo.Context) error {
	chefID, err := pathUUID(ctx, "chefId", "chef id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetIncomingCollaborationRequestsQuery(chefID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getIncomingCollabsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCollaborationRequestList(rows))
}

// GetOutgoingCollaborationRequests handles
// GET /api/v1/collaboration-requests/outgoing/:chefId.
func (s *Server) GetOutgoingCollaborationRequests(ctx echo.Context) error {
	chefID, err := pathUUID(ctx, "chefId", "chef id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOutgoingCollaborationRequestsQuery(chefID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getOutgoingCollabsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCollaborationRequestList(rows))
}

// AcceptCollaborationRequest handles POST /api/v1/collaboration-requests/:id/accept.
func (s *Server) AcceptCollaborationRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id", "request id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewAcceptCollaborationRequestCommand(requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	request, err := s.acceptCollabHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCollaborationRequestBody(request))
}

// RejectCollaborationRequest handles POST /api/v1/collaboration-requests/:id/reject.
func (s *Server) RejectCollaborationRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id", "request id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	command, err := commands.NewRejectCollaborationRequestCommand(requestID, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	request, err := s.rejectCollabHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCollaborationRequestBody(request))
}

// DeleteCollaborationRequest handles DELETE /api/v1/collaboration-requests/:id.
// Either party may withdraw; the request stays on record but vanishes from
// lookups. Returns 204.
func (s *Server) DeleteCollaborationRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id", "request id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		ChefID string `json:"chef_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	callerID, err := parseUUID(body.ChefID, "chef_id")
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewDeleteCollaborationRequestCommand(requestID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteCollabHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toCollaborationRequestList(rows []queries.CollaborationRequestResponse) []CollaborationRequestBody {
	response := make([]CollaborationRequestBody, 0, len(rows))
	for _, row := range rows {
		response = append(response, toCollaborationRequestListItem(row))
	}
	return response
}
