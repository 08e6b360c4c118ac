package collab

import (
	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of a collaboration request.
// The status is monotonic: a pending request is answered exactly once
// (accepted or rejected), and any request may be erased by moving to
// deleted, which is terminal.
//
//	pending ──┬──> accepted ──┐
//	          ├──> rejected ──┼──> deleted
//	          └───────────────┘
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the invitation awaits the target
	// chef's answer.
	Pending

	// Accepted indicates the target chef joined the order.
	Accepted

	// Rejected indicates the target chef declined the invitation.
	Rejected

	// Deleted indicates either party erased the request.
	// Deleted requests are invisible to lookups. Terminal.
	Deleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
		Deleted:  "deleted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
		Deleted:  "deleted",
	}
}

// StatusFromString maps a persisted vocabulary word back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("collaboration request status " + s)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("collaboration request status")
	}
	return nil
}

// String returns the persisted vocabulary word for the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to Accepted. Only pending requests
// can be accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateConflictError(Accepted.String(), s.String())
	}
	return Accepted, nil
}

// Reject transitions the status to Rejected. Only pending requests
// can be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateConflictError(Rejected.String(), s.String())
	}
	return Rejected, nil
}

// Delete transitions the status to Deleted. Allowed from any prior
// status, including pending; Deleted itself is terminal.
func (s Status) Delete() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Deleted {
		return Unknown, errs.NewStateConflictError(Deleted.String(), s.String())
	}
	return Deleted, nil
}
