// Package product provides the product domain model for the sales ledger.
// Products are shared-by-reference collaborators of the order lifecycle:
// order lines reference them by identifier and capture their unit price at
// order time, and shipment recording decrements their stock.
//
// Key business rules:
//   - Stock is decremented by exactly the shipped line quantity
//   - Stock may go negative: shipment never blocks on insufficient stock
//   - Products are never deleted by the order lifecycle
package product
