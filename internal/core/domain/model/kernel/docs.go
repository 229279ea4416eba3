// Package kernel provides core domain primitives for the sales ledger system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Address: A value object for postal addresses with validation and value equality,
//     used for customer records and for the shipping-address snapshot on orders
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
