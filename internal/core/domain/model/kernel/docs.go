// Package kernel provides core domain primitives shared across the catering
// domain model. It currently contains the UUID value object used to identify
// bulk orders, chefs, customers, and collaboration requests.
//
// The primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
