package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableChefsQueryHandler lists the chef directory with an active
// assignment count per chef. An assignment is active while its order is
// accepted, collaborating, or preparing; collaborator work counts the same
// as primary work.
type GetAvailableChefsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableChefsQueryHandler creates a handler for the chef directory query.
func NewGetAvailableChefsQueryHandler(db *gorm.DB) GetAvailableChefsQueryHandler {
	return GetAvailableChefsQueryHandler{db: db}
}

// Handle executes the directory query and buckets each chef's workload.
// Results are sorted by name for stable output.
func (h GetAvailableChefsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableChefsQuery,
) ([]GetAvailableChefsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	chefs := make([]GetAvailableChefsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			COUNT(o.id) AS active_orders
		FROM chefs c
		LEFT JOIN bulk_orders o
			ON (o.primary_chef_id = c.id OR c.id::text = ANY(o.collaborators))
			AND o.status IN ('accepted', 'collaborating', 'preparing')
		GROUP BY c.id, c.name
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var chef GetAvailableChefsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &chef.Name, &chef.ActiveOrders); err != nil {
			return nil, err
		}

		if chef.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		chef.BusyMinutes, chef.Availability = AvailabilityBucket(chef.ActiveOrders)

		chefs = append(chefs, chef)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return chefs, nil
}
