// Package order provides domain entities and business logic for order management
// in the sales ledger. It implements the Order aggregate root with lifecycle
// management from creation through shipment.
//
// The package includes:
//   - Order: The aggregate root managing identity, discount, address snapshot, and shipment
//   - Line: A value object binding a product, a positive quantity, and a captured unit price
//
// Key business rules:
//   - Orders carry a shipping-address snapshot copied from the customer at creation time
//   - The discount rate is decided once at creation from the customer tier
//   - The line sequence is immutable after creation
//   - The shipped date transitions exactly once; re-recording shipment is a no-op
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
