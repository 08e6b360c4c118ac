// Package services contains domain services encapsulating business rules
// that do not belong to a single aggregate.
//
// The package includes:
//   - EventDateLockPolicy: the pure rule deciding whether kitchen-advancing
//     status transitions are blocked by event-date proximity.
//
// Domain services are stateless and perform no I/O; all inputs arrive as
// parameters and all outcomes are returned as values.
package services
