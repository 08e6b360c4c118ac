package collab

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not created
	// through the NewRequest or RestoreRequest factory methods.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// Request represents a collaboration invitation from a bulk order's primary
// chef to a candidate collaborator chef. It is an aggregate root with a
// monotonic status: answered at most once, erasable by either party.
//
// Invariants enforced here:
//   - message and work distribution are required at creation
//   - a chef cannot invite themselves
//   - status transitions follow the Status state machine
//   - only the two parties may delete the request
//
// The uniqueness rule (at most one pending request per bulk order and target
// chef pair) spans multiple requests and is enforced by the application
// layer against the repository.
type Request struct {
	id          kernel.UUID
	bulkOrderID kernel.UUID
	fromChefID  kernel.UUID
	toChefID    kernel.UUID

	message          string
	workDistribution string

	status          Status
	rejectionReason string

	createdAt time.Time

	// version is the optimistic-concurrency token assigned by persistence.
	version int

	isConstructed bool
}

// NewRequest creates a pending collaboration request.
// The caller must have verified that fromChefID is the order's primary chef;
// that rule needs the order and lives in the application layer.
func NewRequest(
	id kernel.UUID,
	bulkOrderID kernel.UUID,
	fromChefID kernel.UUID,
	toChefID kernel.UUID,
	message string,
	workDistribution string,
	createdAt time.Time,
) (*Request, error) {
	request := &Request{
		status:        Pending,
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setParties(bulkOrderID, fromChefID, toChefID),
		request.setMessage(message),
		request.setWorkDistribution(workDistribution),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreRequest reconstructs a Request from persistence.
func RestoreRequest(
	id kernel.UUID,
	bulkOrderID kernel.UUID,
	fromChefID kernel.UUID,
	toChefID kernel.UUID,
	message string,
	workDistribution string,
	status Status,
	rejectionReason string,
	createdAt time.Time,
	version int,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	request := &Request{
		status:          status,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		version:         version,
		isConstructed:   true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setParties(bulkOrderID, fromChefID, toChefID),
		request.setMessage(message),
		request.setWorkDistribution(workDistribution),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate ensures the Request was created through a factory method.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// BulkOrderID returns the parent order's identifier.
func (r *Request) BulkOrderID() kernel.UUID {
	return r.bulkOrderID
}

// FromChefID returns the inviting (primary) chef.
func (r *Request) FromChefID() kernel.UUID {
	return r.fromChefID
}

// ToChefID returns the invited chef.
func (r *Request) ToChefID() kernel.UUID {
	return r.toChefID
}

// Message returns the invitation message.
func (r *Request) Message() string {
	return r.message
}

// WorkDistribution returns the proposed split of work.
func (r *Request) WorkDistribution() string {
	return r.workDistribution
}

// Status returns the current request status.
func (r *Request) Status() Status {
	return r.status
}

// RejectionReason returns the reason stored on rejection, if any.
func (r *Request) RejectionReason() string {
	return r.rejectionReason
}

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// Version returns the optimistic-concurrency token loaded from persistence.
func (r *Request) Version() int {
	return r.version
}

// Accept marks the invitation accepted. Only pending requests can be accepted.
func (r *Request) Accept() error {
	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject marks the invitation rejected and stores the reason, which may be empty.
func (r *Request) Reject(reason string) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.rejectionReason = reason
	return nil
}

// Delete erases the request. Only the inviting or invited chef may delete,
// from any prior status including pending. Deleted requests are invisible
// to subsequent lookups.
func (r *Request) Delete(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if !callerID.IsEqual(r.fromChefID) && !callerID.IsEqual(r.toChefID) {
		return errs.NewNotAuthorizedError("chef "+callerID.String(), "delete the collaboration request")
	}

	newStatus, err := r.status.Delete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setParties(bulkOrderID, fromChefID, toChefID kernel.UUID) error {
	if err := errors.Join(
		bulkOrderID.Validate(),
		fromChefID.Validate(),
		toChefID.Validate(),
	); err != nil {
		return err
	}
	if fromChefID.IsEqual(toChefID) {
		return errs.NewValueIsInvalidError("toChefId equals fromChefId")
	}

	r.bulkOrderID = bulkOrderID
	r.fromChefID = fromChefID
	r.toChefID = toChefID
	return nil
}

func (r *Request) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	r.message = message
	return nil
}

func (r *Request) setWorkDistribution(workDistribution string) error {
	if workDistribution == "" {
		return errs.NewValueIsRequiredError("workDistribution")
	}
	r.workDistribution = workDistribution
	return nil
}
