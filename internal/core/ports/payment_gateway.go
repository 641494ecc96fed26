package ports

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/payment"
)

// GatewayStatus is the normalized verdict of the payment gateway about a
// transaction. Adapters translate the provider's vocabulary into it.
type GatewayStatus int

const (
	// GatewayStatusUnknown means the gateway reported something the
	// adapter could not classify; the payment is left untouched.
	GatewayStatusUnknown GatewayStatus = iota
	// GatewayStatusAccepted means the money was received.
	GatewayStatusAccepted
	// GatewayStatusRefused means the payment was declined.
	GatewayStatusRefused
	// GatewayStatusPending means the payer has not finished yet.
	GatewayStatusPending
	// GatewayStatusCancelled means the payer abandoned the payment.
	GatewayStatusCancelled
)

// InitiatePaymentRequest carries everything the gateway needs to open a
// checkout session for a mobile-money payment.
type InitiatePaymentRequest struct {
	Reference     string
	Amount        kernel.Money
	Method        payment.Method
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Description   string
}

// InitiatePaymentResponse is the gateway's answer to an initiation: the
// URL the payer must visit to approve the charge.
type InitiatePaymentResponse struct {
	PaymentURL       string
	PaymentToken     string
	GatewayReference string
}

// CheckPaymentResult is the gateway's answer to a status poll.
type CheckPaymentResult struct {
	Status  GatewayStatus
	Message string
}

// PaymentGateway abstracts the mobile-money payment processor.
// Implementations must not mutate domain state: handlers own the
// transition from gateway verdicts to payment statuses.
type PaymentGateway interface {
	// Initiate opens a checkout session for a pending payment.
	Initiate(ctx context.Context, req InitiatePaymentRequest) (InitiatePaymentResponse, error)

	// CheckStatus polls the gateway for the current verdict on a
	// transaction previously opened with Initiate.
	CheckStatus(ctx context.Context, reference string) (CheckPaymentResult, error)
}
