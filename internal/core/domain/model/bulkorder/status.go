package bulkorder

import (
	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of a bulk order.
// It implements a state machine with defined transitions to ensure
// orders follow the fulfillment workflow.
//
// State transitions:
//
//	pending ──┬──> accepted ──────┬──> preparing ──> ready_for_delivery ──> completed
//	          │        │          │
//	          │        └──> collaborating
//	          │                   │
//	          ├──> declined       └──> preparing (see above)
//	          │
//	          └──> collaborating
//
//	Any non-terminal state may move to cancelled.
//
// Status is a value object that validates state transitions and provides
// the string vocabulary used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a bulk order is placed.
	// Orders in this status are waiting for the primary chef's decision.
	Pending

	// Accepted indicates the primary chef has taken the order.
	Accepted

	// Declined indicates the primary chef turned the order down.
	// This is a final state.
	Declined

	// Collaborating indicates at least one collaboration request
	// was accepted and multiple chefs share the order.
	Collaborating

	// Preparing indicates the kitchen has started on the order.
	Preparing

	// ReadyForDelivery indicates preparation is finished and the order
	// awaits pickup or delivery dispatch.
	ReadyForDelivery

	// Completed indicates the order was fulfilled. Final state.
	Completed

	// Cancelled indicates the order was withdrawn. Final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to the persisted vocabulary.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		Accepted:         "accepted",
		Declined:         "declined",
		Collaborating:    "collaborating",
		Preparing:        "preparing",
		ReadyForDelivery: "ready_for_delivery",
		Completed:        "completed",
		Cancelled:        "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "pending",
		Accepted:         "accepted",
		Declined:         "declined",
		Collaborating:    "collaborating",
		Preparing:        "preparing",
		ReadyForDelivery: "ready_for_delivery",
		Completed:        "completed",
		Cancelled:        "cancelled",
	}
}

// StatusFromString maps a persisted vocabulary word back to a Status.
// Returns an error for anything outside the valid vocabulary, including
// the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted vocabulary word for the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Declined || s == Completed || s == Cancelled
}

// Accept transitions the status to Accepted.
// Only pending orders can be accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateConflictError(Accepted.String(), s.String())
	}
	return Accepted, nil
}

// Decline transitions the status to Declined.
// Only pending orders can be declined.
func (s Status) Decline() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateConflictError(Declined.String(), s.String())
	}
	return Declined, nil
}

// PromoteToCollaborating transitions the status to Collaborating.
//
// Valid transitions:
//   - Pending -> Collaborating
//   - Accepted -> Collaborating
//   - Collaborating -> Collaborating (further collaborators join)
//
// Promotion from Preparing or any later state is a conflict: the kitchen
// workflow has moved past the point where collaborators may join.
func (s Status) PromoteToCollaborating() (Status, error) {
	if s != Pending && s != Accepted && s != Collaborating {
		return Unknown, errs.NewStateConflictError(Collaborating.String(), s.String())
	}
	return Collaborating, nil
}

// StartPreparing transitions the status to Preparing.
// Allowed from Accepted and Collaborating.
func (s Status) StartPreparing() (Status, error) {
	if s != Accepted && s != Collaborating {
		return Unknown, errs.NewStateConflictError(Preparing.String(), s.String())
	}
	return Preparing, nil
}

// MarkReadyForDelivery transitions the status to ReadyForDelivery.
// Allowed only from Preparing.
func (s Status) MarkReadyForDelivery() (Status, error) {
	if s != Preparing {
		return Unknown, errs.NewStateConflictError(ReadyForDelivery.String(), s.String())
	}
	return ReadyForDelivery, nil
}

// Complete transitions the status to Completed.
// Allowed only from ReadyForDelivery.
func (s Status) Complete() (Status, error) {
	if s != ReadyForDelivery {
		return Unknown, errs.NewStateConflictError(Completed.String(), s.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Allowed from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewStateConflictError(Cancelled.String(), s.String())
	}
	return Cancelled, nil
}
