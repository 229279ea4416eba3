// Package customer provides the customer domain model for the sales ledger.
// Customers are read-only collaborators of the order lifecycle: orders look
// them up by identifier, copy their address as a shipping snapshot, and derive
// the order discount from their size classification.
//
// The package includes:
//   - Customer: An entity holding identity, company name, tier, and address
//   - Tier: A closed classification tag carrying the pure discount rule
//
// Key business rules:
//   - Exactly two tiers exist: Standard and Large
//   - Large-tier customers receive a fixed 0.15 discount on new orders,
//     all other customers receive zero
//   - The discount mapping is pure and decided once at customer-read time
package customer
