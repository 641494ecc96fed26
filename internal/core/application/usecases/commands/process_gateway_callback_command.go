package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrProcessGatewayCallbackCommandIsNotConstructed = errors.New(
	"ProcessGatewayCallbackCommand must be created via NewProcessGatewayCallbackCommand constructor",
)

// ProcessGatewayCallbackCommand carries the raw fields of a gateway
// webhook notification. The gateway's vocabulary is kept as-is here and
// interpreted by the handler.
type ProcessGatewayCallbackCommand struct { //nolint:recvcheck //using for validation
	reference    string
	pageAction   string
	errorMessage string
	phoneUsed    string

	guard guard.ConstructorGuard
}

// NewProcessGatewayCallbackCommand creates a command from webhook fields.
// All fields may be empty: the gateway's payloads are not under our
// control and a missing reference is answered with a negative ack, not
// an error.
func NewProcessGatewayCallbackCommand(reference, pageAction, errorMessage, phoneUsed string) ProcessGatewayCallbackCommand {
	return ProcessGatewayCallbackCommand{
		reference:    reference,
		pageAction:   pageAction,
		errorMessage: errorMessage,
		phoneUsed:    phoneUsed,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessGatewayCallbackCommand) Validate() error {
	return c.guard.Validate(ErrProcessGatewayCallbackCommandIsNotConstructed)
}

// Reference returns the payment reference named by the webhook.
func (c ProcessGatewayCallbackCommand) Reference() string {
	return c.reference
}

// PageAction returns the gateway's page action field.
func (c ProcessGatewayCallbackCommand) PageAction() string {
	return c.pageAction
}

// ErrorMessage returns the gateway's error message field, which
// confusingly also announces success.
func (c ProcessGatewayCallbackCommand) ErrorMessage() string {
	return c.errorMessage
}

// PhoneUsed returns the phone number the gateway reports as charged.
func (c ProcessGatewayCallbackCommand) PhoneUsed() string {
	return c.phoneUsed
}
