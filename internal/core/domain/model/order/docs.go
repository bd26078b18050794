// Package order provides the Order aggregate root and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owning line items, amounts, and lifecycle
//   - Item: an immutable order line with snapshotted product data
//   - Status: the state machine driving lifecycle transitions
//   - PaymentStatus: the free-moving payment reconciliation enum
//
// Key business rules:
//   - Amounts always satisfy total = subtotal - discount + tax
//   - Status follows pending -> confirmed -> processing -> shipped ->
//     delivered -> completed, with cancellation possible up to shipped
//   - Completed and cancelled orders are immutable, except that payment
//     status may still change on non-cancelled orders
//
// The package follows Domain-Driven Design principles: rich domain behavior,
// private fields, and constructor validation keep the aggregate in a valid
// state at all times.
package order
