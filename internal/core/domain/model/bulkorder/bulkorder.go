package bulkorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrBulkOrderIsNotConstructed is returned when a BulkOrder instance was not created
	// through the NewBulkOrder or RestoreBulkOrder factory methods.
	ErrBulkOrderIsNotConstructed = errors.New("BulkOrder must be created via NewBulkOrder constructor")
)

// BulkOrder represents a catering/event order in the system. It is the aggregate
// root owning the fulfillment lifecycle from submission through acceptance,
// optional multi-chef collaboration, kitchen preparation, dispatch, and completion.
//
// BulkOrder maintains these invariants:
//   - status only changes through the guarded transition methods
//   - exactly one immutable primary chef; the collaborator set grows only
//     through accepted collaboration requests
//   - collaborators are non-empty only once the order is collaborating or past it
//   - kitchen-advancing transitions consult the event-date lock policy
//
// The struct uses private fields for encapsulation; persistence reconstructs it
// through RestoreBulkOrder.
type BulkOrder struct {
	id          kernel.UUID
	orderNumber string

	customerID    kernel.UUID
	primaryChefID kernel.UUID
	collaborators []kernel.UUID

	status    Status
	orderType OrderType
	eventDate time.Time
	items     []Item

	totalAmountCents int64

	chefNote      string
	declineReason string
	cancelReason  string

	createdAt time.Time

	// version is the optimistic-concurrency token assigned by persistence.
	version int

	isConstructed bool
}

// NewBulkOrder creates a new BulkOrder in pending status.
// This is invoked by order placement; the primary chef has not decided yet.
//
// An order number of the form "BULK-XXXXXXXX" is generated. The event date may
// be the zero time or the epoch sentinel, both meaning "unspecified"; such
// orders are never subject to the event-date lock.
func NewBulkOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	primaryChefID kernel.UUID,
	orderType OrderType,
	eventDate time.Time,
	items []Item,
	createdAt time.Time,
) (*BulkOrder, error) {
	order := &BulkOrder{
		orderNumber:   generateOrderNumber(),
		status:        Pending,
		eventDate:     eventDate,
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPrimaryChefID(primaryChefID),
		order.setOrderType(orderType),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreBulkOrder reconstructs a BulkOrder from persistence.
// All fields are taken as stored; the status and collaborator invariant are
// re-validated so corrupt rows surface as errors instead of invalid aggregates.
func RestoreBulkOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	primaryChefID kernel.UUID,
	collaborators []kernel.UUID,
	status Status,
	orderType OrderType,
	eventDate time.Time,
	items []Item,
	chefNote string,
	declineReason string,
	cancelReason string,
	createdAt time.Time,
	version int,
) (*BulkOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if len(collaborators) > 0 && !statusAllowsCollaborators(status) {
		return nil, errs.NewValueIsInvalidErrorWithCause("collaborators",
			fmt.Errorf("status %s does not allow collaborators", status))
	}

	order := &BulkOrder{
		orderNumber:   orderNumber,
		collaborators: collaborators,
		status:        status,
		eventDate:     eventDate,
		chefNote:      chefNote,
		declineReason: declineReason,
		cancelReason:  cancelReason,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPrimaryChefID(primaryChefID),
		order.setOrderType(orderType),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the BulkOrder was created through a factory method.
func (o *BulkOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrBulkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two bulk orders by their unique identifiers.
func (o *BulkOrder) IsEqual(other *BulkOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *BulkOrder) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the immutable human-facing order number.
func (o *BulkOrder) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the ordering customer's identifier.
func (o *BulkOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// PrimaryChefID returns the chef who owns the order.
func (o *BulkOrder) PrimaryChefID() kernel.UUID {
	return o.primaryChefID
}

// Collaborators returns a copy of the collaborator chef set.
func (o *BulkOrder) Collaborators() []kernel.UUID {
	out := make([]kernel.UUID, len(o.collaborators))
	copy(out, o.collaborators)
	return out
}

// Status returns the current lifecycle state.
func (o *BulkOrder) Status() Status {
	return o.status
}

// OrderType reports whether this is a delivery or pickup order.
func (o *BulkOrder) OrderType() OrderType {
	return o.orderType
}

// EventDate returns the event date, or the unspecified sentinel / zero time.
func (o *BulkOrder) EventDate() time.Time {
	return o.eventDate
}

// Items returns a copy of the order lines.
func (o *BulkOrder) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// TotalAmountCents returns the order's monetary total in cents.
func (o *BulkOrder) TotalAmountCents() int64 {
	return o.totalAmountCents
}

// ChefNote returns the note the primary chef left when accepting.
func (o *BulkOrder) ChefNote() string {
	return o.chefNote
}

// DeclineReason returns the reason given on decline, if any.
func (o *BulkOrder) DeclineReason() string {
	return o.declineReason
}

// CancelReason returns the reason given on cancellation, if any.
func (o *BulkOrder) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the placement timestamp.
func (o *BulkOrder) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency token loaded from persistence.
// Conditional writes use it to detect lost races.
func (o *BulkOrder) Version() int {
	return o.version
}

// Accept records the primary chef taking the order.
// Only the primary chef may accept, and only from pending.
func (o *BulkOrder) Accept(chefID kernel.UUID, note string) error {
	if err := o.requirePrimaryChef(chefID, "accept the bulk order"); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.chefNote = note
	return nil
}

// Decline records the primary chef turning the order down.
// Only the primary chef may decline, and only from pending.
func (o *BulkOrder) Decline(chefID kernel.UUID, reason string) error {
	if err := o.requirePrimaryChef(chefID, "decline the bulk order"); err != nil {
		return err
	}

	newStatus, err := o.status.Decline()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.declineReason = reason
	return nil
}

// AcceptCollaboration adds a collaborator chef and promotes the order to
// collaborating. It is invoked only when a collaboration request is accepted.
// Joining an order that is already preparing or later is a state conflict
// and leaves the aggregate untouched. Re-accepting an already present
// collaborator is idempotent on the set.
func (o *BulkOrder) AcceptCollaboration(collaboratorID kernel.UUID) error {
	if err := collaboratorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.PromoteToCollaborating()
	if err != nil {
		return err
	}

	o.status = newStatus
	for _, existing := range o.collaborators {
		if existing.IsEqual(collaboratorID) {
			return nil
		}
	}
	o.collaborators = append(o.collaborators, collaboratorID)
	return nil
}

// StartPreparing moves the order into the kitchen.
// Blocked while the event-date lock window is open.
func (o *BulkOrder) StartPreparing(today time.Time) error {
	if err := o.requireUnlocked(today); err != nil {
		return err
	}

	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReadyForDelivery records that preparation is finished.
// Blocked while the event-date lock window is open.
func (o *BulkOrder) MarkReadyForDelivery(today time.Time) error {
	if err := o.requireUnlocked(today); err != nil {
		return err
	}

	newStatus, err := o.status.MarkReadyForDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete records fulfillment of the order.
// Blocked while the event-date lock window is open.
func (o *BulkOrder) Complete(today time.Time) error {
	if err := o.requireUnlocked(today); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ValidateAssignDelivery checks that the order may be handed to the dispatch
// service: it must be ready for delivery and of the delivery type. The check
// mutates nothing; dispatch leaves the status unchanged.
func (o *BulkOrder) ValidateAssignDelivery() error {
	if o.status != ReadyForDelivery {
		return errs.NewStateConflictError("assign delivery from "+ReadyForDelivery.String(), o.status.String())
	}
	if o.orderType != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%s orders are not dispatched", o.orderType))
	}
	return nil
}

// Cancel withdraws the order from any non-terminal state.
// Only the primary chef or the customer may cancel.
func (o *BulkOrder) Cancel(actorID kernel.UUID, reason string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if !actorID.IsEqual(o.primaryChefID) && !actorID.IsEqual(o.customerID) {
		return errs.NewNotAuthorizedError("actor "+actorID.String(), "cancel the bulk order")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	return nil
}

func (o *BulkOrder) requirePrimaryChef(chefID kernel.UUID, operation string) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	if !chefID.IsEqual(o.primaryChefID) {
		return errs.NewNotAuthorizedError("chef "+chefID.String(), operation)
	}
	return nil
}

func (o *BulkOrder) requireUnlocked(today time.Time) error {
	decision := services.NewEventDateLockPolicy().IsLocked(o.eventDate, today)
	if decision.Locked {
		return errs.NewEventDateLockedError(o.eventDate, decision.DaysRemaining)
	}
	return nil
}

func (o *BulkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *BulkOrder) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *BulkOrder) setPrimaryChefID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.primaryChefID = id
	return nil
}

func (o *BulkOrder) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *BulkOrder) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var total int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.TotalCents()
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalAmountCents = total
	return nil
}

func statusAllowsCollaborators(status Status) bool {
	switch status {
	// Cancelled is included: a collaborating order may be cancelled and
	// keeps its collaborator set for the record.
	case Collaborating, Preparing, ReadyForDelivery, Completed, Cancelled:
		return true
	default:
		return false
	}
}

// generateOrderNumber produces the human-facing identifier, e.g. "BULK-3FA85F64".
// The format is kept for compatibility with the legacy system.
func generateOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BULK-" + strings.ToUpper(raw[:8])
}
