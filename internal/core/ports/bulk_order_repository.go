// Package ports defines the outbound contracts of the application core:
// repository interfaces, the unit-of-work transaction boundary, and the
// messaging ports for notifications and delivery dispatch. These interfaces
// establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
)

// BulkOrderRepository defines the persistence contract for bulk order
// aggregates. Implementations must enforce optimistic concurrency on Update:
// a write against a stale aggregate version fails with a state conflict.
type BulkOrderRepository interface {
	// Add persists a new bulk order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *bulkorder.BulkOrder) error

	// Update persists changes to an existing bulk order aggregate.
	// Fails with a state conflict error when the stored version no longer
	// matches the version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *bulkorder.BulkOrder) error

	// Get retrieves a bulk order aggregate by its unique identifier,
	// including its line items and collaborator list.
	Get(ctx context.Context, id kernel.UUID) (*bulkorder.BulkOrder, error)

	// GetAllPendingCreatedBefore retrieves all orders still in pending
	// status that were created before the cutoff. Used by the stale-order
	// cancellation job.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*bulkorder.BulkOrder, error)
}
