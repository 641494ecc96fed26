// Package order provides domain entities and business logic for order management
// in the kksExpress delivery marketplace. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, snapshots, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Sender, Recipient: Contact snapshots frozen at creation
//   - CourierInfo: The courier snapshot captured when an order is accepted
//   - Package, Category, Nature: Descriptors of what is being shipped
//
// Key business rules:
//   - Orders follow the workflow Pending -> Accepted -> PickedUp -> InTransit -> Delivered
//   - Only Pending orders can be cancelled
//   - The 4-digit confirmation code is generated at pickup and checked at delivery
//   - Courier position updates are tracked only while the order is InTransit
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
