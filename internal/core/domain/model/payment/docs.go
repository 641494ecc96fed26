// Package payment provides domain entities for the courier daily-quota
// ledger of the kksExpress delivery marketplace.
//
// The package includes:
//   - Payment: The aggregate root, one row per payment a courier made
//   - Status: The settlement state of a single payment row
//   - Method: How the courier paid (cash or one of the mobile wallets)
//   - Settlement: The reconciliation stamp of a calendar day
//
// Key business rules:
//   - Cash payments are Complete on creation, mobile ones start Pending
//   - Terminal payment statuses absorb, repeated transitions are no-ops
//   - Day ledgers are always re-derived from rows; the stamps on each row
//     (due, remaining, arrears, settlement) exist for audit and are
//     rewritten by the reconciliation pass
package payment
