package kernel

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Business reference formats. References are human-facing identifiers carried
// on receipts and support calls; they are not guaranteed collision-free, the
// database unique constraint is the final arbiter and creation is retried on
// a collision.
const (
	orderReferencePrefix = "CMD"

	// PaymentReferencePrefixMobile marks gateway-collected payments.
	PaymentReferencePrefixMobile = "CP"
	// PaymentReferencePrefixCash marks cash payments recorded at the office.
	PaymentReferencePrefixCash = "ES"
)

// NewOrderReference builds an order reference: "CMD" + YYMMDD + 4 random digits.
//
// Example: CMD2608304821.
func NewOrderReference(now time.Time) string {
	return fmt.Sprintf("%s%s%04d",
		orderReferencePrefix,
		now.Format("060102"),
		rand.IntN(10000),
	)
}

// NewPaymentReference builds a payment reference: prefix + 4-digit courier
// code + last 8 digits of the unix-milli timestamp + 4 random digits.
//
// Example: ES0042345678904821.
func NewPaymentReference(prefix string, courierID UUID, now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("%s%04d%s%04d",
		prefix,
		courierShortCode(courierID),
		millis,
		rand.IntN(10000),
	)
}

// courierShortCode folds a courier UUID into the 4-digit code slot the payment
// reference format reserves for the courier.
func courierShortCode(id UUID) int {
	raw := id.Bytes()
	return (int(raw[0])<<8 | int(raw[1])) % 10000
}
