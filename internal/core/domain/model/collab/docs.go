// Package collab provides the CollaborationRequest aggregate: the invitation
// protocol by which a bulk order's primary chef asks another chef to share
// the order.
//
// Key business rules:
//   - the invitation carries a required message and work-distribution proposal
//   - a chef cannot invite themselves
//   - a pending request is answered at most once (accepted or rejected)
//   - either party may delete a request from any prior status; deleted
//     requests are invisible to lookups and cannot be revived
//
// The cross-request rule, at most one pending request per (bulk order,
// target chef) pair, is enforced by the application layer.
package collab
