package ports

import (
	"context"

	"catering/internal/core/domain/model/collab"
	"catering/internal/core/domain/model/kernel"
)

// CollaborationRequestRepository defines the persistence contract for
// collaboration request aggregates. Deleted requests stay in storage but are
// invisible to every lookup method: Get returns an object-not-found error
// for them and list methods skip them.
type CollaborationRequestRepository interface {
	// Add persists a new collaboration request.
	Add(ctx context.Context, aggregate *collab.Request) error

	// Update persists changes to an existing request. Fails with a state
	// conflict error when the stored version no longer matches the version
	// the aggregate was loaded with.
	Update(ctx context.Context, aggregate *collab.Request) error

	// Get retrieves a request by its unique identifier.
	// Deleted requests are reported as not found.
	Get(ctx context.Context, id kernel.UUID) (*collab.Request, error)

	// GetPendingByOrderAndChef retrieves the pending request for the given
	// (bulk order, target chef) pair, if one exists. At most one such
	// request can be pending at a time; the application layer relies on
	// this lookup to keep it that way.
	GetPendingByOrderAndChef(ctx context.Context, bulkOrderID, toChefID kernel.UUID) (*collab.Request, error)
}
