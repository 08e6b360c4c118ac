package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetAvailableChefsQueryIsNotConstructed = errors.New(
	"GetAvailableChefsQuery must be created via NewGetAvailableChefsQuery constructor",
)

// Availability buckets for the chef directory. A chef's workload is estimated
// at 25 minutes per active order; the bucket thresholds come from the legacy
// workload heuristic.
const (
	AvailabilityAvailable = "available"
	AvailabilityModerate  = "moderate"
	AvailabilityBusy      = "busy"

	minutesPerActiveOrder = 25
	availableMaxMinutes   = 60
	moderateMaxMinutes    = 120
)

// GetAvailableChefsQuery lists the chef directory with estimated workload,
// used when picking a collaborator.
type GetAvailableChefsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableChefsQuery creates a chef directory query. Parameterless.
func NewGetAvailableChefsQuery() GetAvailableChefsQuery {
	return GetAvailableChefsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableChefsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableChefsQueryIsNotConstructed)
}

// GetAvailableChefsQueryResponse is one chef directory row.
type GetAvailableChefsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	ActiveOrders int
	BusyMinutes  int
	Availability string
}

// AvailabilityBucket estimates a chef's workload from their active order
// count and maps it to a bucket: 25 busy-minutes per order, available up to
// 60 minutes, moderate up to 120, busy beyond.
func AvailabilityBucket(activeOrders int) (busyMinutes int, bucket string) {
	busyMinutes = activeOrders * minutesPerActiveOrder

	switch {
	case busyMinutes <= availableMaxMinutes:
		return busyMinutes, AvailabilityAvailable
	case busyMinutes <= moderateMaxMinutes:
		return busyMinutes, AvailabilityModerate
	default:
		return busyMinutes, AvailabilityBusy
	}
}
