// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the kksExpress backend. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - LedgerCalculator: The daily-quota reconciliation engine. It derives day
//     ledgers, accumulated arrears and the amount a courier owes today from
//     raw payment rows, with the reference day injected by the caller.
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
