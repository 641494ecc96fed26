// Package kernel provides core domain primitives shared by the order state
// machine and the payment reconciliation engine. It implements fundamental
// building blocks following Domain-Driven Design principles that are used
// throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A validated GPS coordinate with Haversine distance and ETA helpers
//   - Money: An immutable non-negative monetary amount backed by decimal arithmetic
//   - Date: A calendar date used for day-level payment bucketing
//   - Policy: The injected business policy constants (daily quota, order cap, fees)
//   - Reference generators for order and payment business references
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
