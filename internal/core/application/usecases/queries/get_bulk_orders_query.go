// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: raw SQL read models
// that bypass the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetBulkOrdersQueryIsNotConstructed = errors.New(
	"GetBulkOrdersQuery must be created via NewGetBulkOrdersQuery constructor",
)

// GetBulkOrdersQuery retrieves the bulk order list view, optionally filtered
// by status vocabulary word and by a case-insensitive order number search.
//
// Example:
//
//	query, err := NewGetBulkOrdersQuery("pending", "BULK-3F")
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//	orders, err := handler.Handle(ctx, query)
type GetBulkOrdersQuery struct {
	status string
	search string

	guard guard.ConstructorGuard
}

// NewGetBulkOrdersQuery creates a list query. Both filters are optional;
// an empty status means "all statuses" and an empty search matches everything.
// A non-empty status must be a valid vocabulary word.
func NewGetBulkOrdersQuery(status, search string) (GetBulkOrdersQuery, error) {
	if status != "" {
		if _, err := bulkorder.StatusFromString(status); err != nil {
			return GetBulkOrdersQuery{}, err
		}
	}

	return GetBulkOrdersQuery{
		status: status,
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBulkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBulkOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filtering.
func (q GetBulkOrdersQuery) Status() string {
	return q.status
}

// Search returns the order number search term, empty for no filtering.
func (q GetBulkOrdersQuery) Search() string {
	return q.search
}

// GetBulkOrdersQueryResponse is one row of the bulk order list view.
type GetBulkOrdersQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      string
	CustomerID       kernel.UUID
	PrimaryChefID    kernel.UUID
	Status           string
	OrderType        string
	EventDate        time.Time
	TotalAmountCents int64
	CreatedAt        time.Time
}
