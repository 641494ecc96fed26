package payment

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// Method is how the courier pays the daily quota. Cash is recorded at
// the office; the mobile-money methods go through the payment gateway
// and require the phone number charged.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota
	// MethodCash is a cash payment recorded at the office.
	MethodCash
	// MethodWave is a Wave mobile-money payment.
	MethodWave
	// MethodOrangeMoney is an Orange Money payment.
	MethodOrangeMoney
	// MethodMTNMoney is an MTN Mobile Money payment.
	MethodMTNMoney
)

func getMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCash:        "cash",
		MethodWave:        "wave",
		MethodOrangeMoney: "orange_money",
		MethodMTNMoney:    "mtn_money",
	}
}

// MethodFromString parses the persistence representation of a method.
func MethodFromString(s string) (Method, error) {
	for method, str := range getMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the persistence name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// IsMobile reports whether the method goes through the payment gateway.
func (m Method) IsMobile() bool {
	return m == MethodWave || m == MethodOrangeMoney || m == MethodMTNMoney
}
