package queries

import (
	"database/sql"
	"errors"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/pkg/guard"
)

var ErrGetBulkOrderStatsQueryIsNotConstructed = errors.New(
	"GetBulkOrderStatsQuery must be created via NewGetBulkOrderStatsQuery constructor",
)

// GetBulkOrderStatsQuery computes the chef dashboard counters in a single
// pass over the order table.
type GetBulkOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBulkOrderStatsQuery creates a stats query. Parameterless.
func NewGetBulkOrderStatsQuery() GetBulkOrderStatsQuery {
	return GetBulkOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBulkOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBulkOrderStatsQueryIsNotConstructed)
}

// GetBulkOrderStatsQueryResponse carries the dashboard counters.
// Revenue sums every non-cancelled order.
type GetBulkOrderStatsQueryResponse struct {
	Pending           int
	Accepted          int
	Collaborating     int
	TotalRevenueCents int64
}

// BulkOrderStatsRow is one scanned row of the stats pass. The status column
// is nullable in the legacy schema, so it is carried as sql.NullString and
// the aggregation decides what to do with NULLs.
type BulkOrderStatsRow struct {
	Status           sql.NullString
	TotalAmountCents int64
}

// AggregateBulkOrderStats folds scanned rows into the dashboard counters in
// one pass. Rows with a NULL or unrecognized status are excluded from every
// counter and from revenue; cancelled orders are excluded from revenue only.
func AggregateBulkOrderStats(scannedRows []BulkOrderStatsRow) GetBulkOrderStatsQueryResponse {
	var stats GetBulkOrderStatsQueryResponse

	for _, row := range scannedRows {
		if !row.Status.Valid {
			continue
		}
		status, err := bulkorder.StatusFromString(row.Status.String)
		if err != nil {
			continue
		}

		switch status {
		case bulkorder.Pending:
			stats.Pending++
		case bulkorder.Accepted:
			stats.Accepted++
		case bulkorder.Collaborating:
			stats.Collaborating++
		}

		if status != bulkorder.Cancelled {
			stats.TotalRevenueCents += row.TotalAmountCents
		}
	}

	return stats
}
