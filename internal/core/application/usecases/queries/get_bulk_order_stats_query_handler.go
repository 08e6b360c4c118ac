package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBulkOrderStatsQueryHandler scans the order table and folds the rows
// into the dashboard counters. No caching: the dashboard reads live data.
type GetBulkOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetBulkOrderStatsQueryHandler creates a handler for the stats query.
func NewGetBulkOrderStatsQueryHandler(db *gorm.DB) GetBulkOrderStatsQueryHandler {
	return GetBulkOrderStatsQueryHandler{db: db}
}

// Handle scans (status, total) for every order and aggregates in one pass.
func (h GetBulkOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetBulkOrderStatsQuery,
) (GetBulkOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBulkOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			total_amount_cents
		FROM bulk_orders
	`).Rows()
	if err != nil {
		return GetBulkOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	scanned := make([]BulkOrderStatsRow, 0)
	for rows.Next() {
		var row BulkOrderStatsRow
		if err = rows.Scan(&row.Status, &row.TotalAmountCents); err != nil {
			return GetBulkOrderStatsQueryResponse{}, err
		}
		scanned = append(scanned, row)
	}

	if err = rows.Err(); err != nil {
		return GetBulkOrderStatsQueryResponse{}, err
	}

	return AggregateBulkOrderStats(scanned), nil
}
