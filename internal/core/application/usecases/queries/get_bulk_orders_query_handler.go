package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBulkOrdersQueryHandler retrieves the bulk order list view from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetBulkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBulkOrdersQueryHandler creates a handler for bulk order list queries.
// Requires a GORM database connection for query execution.
func NewGetBulkOrdersQueryHandler(db *gorm.DB) GetBulkOrdersQueryHandler {
	return GetBulkOrdersQueryHandler{db: db}
}

// Handle executes the list query, newest orders first. The status filter
// matches the persisted vocabulary word exactly; the search term matches
// anywhere in the order number, case-insensitively.
func (h GetBulkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBulkOrdersQuery,
) ([]GetBulkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			customer_id,
			primary_chef_id,
			status,
			order_type,
			event_date,
			total_amount_cents,
			created_at
		FROM bulk_orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status())
	}
	if query.Search() != "" {
		sql += " AND order_number ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}
	sql += " ORDER BY created_at DESC"

	orders := make([]GetBulkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetBulkOrdersQueryResponse
		var id, customerID, primaryChefID uuid.UUID

		err = rows.Scan(
			&id,
			&order.OrderNumber,
			&customerID,
			&primaryChefID,
			&order.Status,
			&order.OrderType,
			&order.EventDate,
			&order.TotalAmountCents,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if order.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if order.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if order.PrimaryChefID, err = kernel.UUIDFromBytes(primaryChefID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
