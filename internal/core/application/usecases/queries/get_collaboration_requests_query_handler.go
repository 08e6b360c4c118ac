package queries

import (
	"context"

	"catering/internal/core/domain/model/collab"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIncomingCollaborationRequestsQueryHandler lists a chef's received
// invitations, newest first, excluding deleted requests.
type GetIncomingCollaborationRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetIncomingCollaborationRequestsQueryHandler creates an inbox handler.
func NewGetIncomingCollaborationRequestsQueryHandler(db *gorm.DB) GetIncomingCollaborationRequestsQueryHandler {
	return GetIncomingCollaborationRequestsQueryHandler{db: db}
}

// Handle executes the inbox query.
func (h GetIncomingCollaborationRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetIncomingCollaborationRequestsQuery,
) ([]CollaborationRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanCollaborationRequests(ctx, h.db, "to_chef_id", query.ChefID())
}

// GetOutgoingCollaborationRequestsQueryHandler lists a chef's sent
// invitations, newest first, excluding deleted requests.
type GetOutgoingCollaborationRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetOutgoingCollaborationRequestsQueryHandler creates an outbox handler.
func NewGetOutgoingCollaborationRequestsQueryHandler(db *gorm.DB) GetOutgoingCollaborationRequestsQueryHandler {
	return GetOutgoingCollaborationRequestsQueryHandler{db: db}
}

// Handle executes the outbox query.
func (h GetOutgoingCollaborationRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetOutgoingCollaborationRequestsQuery,
) ([]CollaborationRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanCollaborationRequests(ctx, h.db, "from_chef_id", query.ChefID())
}

// scanCollaborationRequests runs the shared listing query, filtering by the
// given chef column. The column name comes from the two callers above, never
// from user input.
func scanCollaborationRequests(
	ctx context.Context,
	db *gorm.DB,
	chefColumn string,
	chefID kernel.UUID,
) ([]CollaborationRequestResponse, error) {
	requests := make([]CollaborationRequestResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			bulk_order_id,
			from_chef_id,
			to_chef_id,
			message,
			work_distribution,
			status,
			rejection_reason,
			created_at
		FROM collaboration_requests
		WHERE `+chefColumn+` = ? AND status != ?
		ORDER BY created_at DESC
	`, chefID.Bytes(), collab.Deleted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var request CollaborationRequestResponse
		var id, bulkOrderID, fromChefID, toChefID uuid.UUID

		err = rows.Scan(
			&id,
			&bulkOrderID,
			&fromChefID,
			&toChefID,
			&request.Message,
			&request.WorkDistribution,
			&request.Status,
			&request.RejectionReason,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if request.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if request.BulkOrderID, err = kernel.UUIDFromBytes(bulkOrderID[:]); err != nil {
			return nil, err
		}
		if request.FromChefID, err = kernel.UUIDFromBytes(fromChefID[:]); err != nil {
			return nil, err
		}
		if request.ToChefID, err = kernel.UUIDFromBytes(toChefID[:]); err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
