// Package courier provides domain entities and business logic for courier
// management in the kksExpress delivery marketplace.
//
// The package includes:
//   - Courier: The aggregate root that manages identity, availability and live position
//   - Status: The employment state of a courier (active, inactive, on leave, suspended)
//   - VehicleType: The kind of vehicle the courier rides
//
// Key business rules:
//   - Only Active couriers may accept orders
//   - Position reports mark the courier online and stamp the last-seen time
//   - Going offline keeps the last known position for dispatch history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
