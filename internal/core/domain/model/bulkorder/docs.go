// Package bulkorder provides domain entities and business logic for the
// bulk-order fulfillment lifecycle. It implements the BulkOrder aggregate
// root with guarded status transitions and the collaboration invariants.
//
// The package includes:
//   - BulkOrder: the aggregate root owning identity, the collaborator set,
//     and the lifecycle state
//   - Status: a state machine enforcing the fulfillment transition table
//   - Item / OrderType: value objects for order lines and delivery mode
//
// Key business rules:
//   - pending orders are accepted or declined only by the primary chef
//   - the collaborator set grows only through accepted collaboration requests,
//     which promote the order to collaborating
//   - transitions into preparing, ready_for_delivery, and completed are blocked
//     while the event-date lock window is open
//   - any non-terminal order may be cancelled by the primary chef or customer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package bulkorder
