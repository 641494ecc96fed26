package payment

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// Settlement is the reconciliation stamp of a calendar day. Every payment
// row carries the settlement of its day; the re-stamp pass rewrites it
// whenever the day's ledger changes.
type Settlement int

const (
	// SettlementUnknown represents an invalid or undefined settlement.
	SettlementUnknown Settlement = iota

	// SettlementPartial means the day is underpaid but still current.
	// It is the default stamp for a fresh row.
	SettlementPartial

	// SettlementComplete means the day's quota is fully covered.
	SettlementComplete

	// SettlementLate means the day is in the past and still underpaid.
	// Late days feed the arrears sum.
	SettlementLate
)

func getSettlementStrings() map[Settlement]string {
	//nolint:exhaustive // SettlementUnknown is intentionally excluded as it's invalid
	return map[Settlement]string{
		SettlementPartial:  "partial",
		SettlementComplete: "complete",
		SettlementLate:     "late",
	}
}

// SettlementFromString parses the persistence representation of a settlement.
func SettlementFromString(s string) (Settlement, error) {
	for settlement, str := range getSettlementStrings() {
		if str == s {
			return settlement, nil
		}
	}
	return SettlementUnknown, errs.NewValueIsInvalidErrorWithCause(
		"settlement is invalid",
		fmt.Errorf("%q is not a valid day settlement", s),
	)
}

// Validate checks if the Settlement value is valid.
func (s Settlement) Validate() error {
	if _, ok := getSettlementStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("settlement is invalid", fmt.Errorf("%d is not a valid day settlement", s))
	}
	return nil
}

// String returns the persistence name of the settlement.
func (s Settlement) String() string {
	if str, ok := getSettlementStrings()[s]; ok {
		return str
	}
	return "unknown"
}
