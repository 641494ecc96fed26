package notification

import (
	"context"
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// EmailNotifier implements ports.Notifier by emailing the sender.
// Parties without an email address are skipped silently: a sender who
// only left a phone number simply gets no mail.
type EmailNotifier struct {
	sender emailSender
}

// NewEmailNotifier creates a notifier on top of an email sender.
func NewEmailNotifier(sender emailSender) (*EmailNotifier, error) {
	if sender == nil {
		return nil, errs.NewValueIsRequiredError("sender")
	}
	return &EmailNotifier{sender: sender}, nil
}

// SendDeliveryCode mails the confirmation code to the sender after
// pickup. The recipient reads the code to the courier at the door.
func (n *EmailNotifier) SendDeliveryCode(ctx context.Context, aggregate *order.Order) error {
	to := aggregate.Sender().Email()
	if to == "" {
		return nil
	}

	subject := fmt.Sprintf("kksExpress - code de livraison %s", aggregate.Reference())
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre colis %s a ete recupere par notre livreur.\n"+
			"Communiquez le code %s au destinataire : il devra le remettre au livreur pour confirmer la reception.\n\n"+
			"kksExpress",
		aggregate.Sender().Name(),
		aggregate.Reference(),
		aggregate.ConfirmationCode(),
	)

	return n.sender.SendEmail(ctx, to, subject, body)
}

// SendStatusChanged mails the sender when the order moves.
func (n *EmailNotifier) SendStatusChanged(ctx context.Context, aggregate *order.Order) error {
	to := aggregate.Sender().Email()
	if to == "" {
		return nil
	}

	subject := fmt.Sprintf("kksExpress - commande %s %s", aggregate.Reference(), statusLabel(aggregate.Status()))
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre commande %s est maintenant %s.\n\n"+
			"kksExpress",
		aggregate.Sender().Name(),
		aggregate.Reference(),
		statusLabel(aggregate.Status()),
	)

	return n.sender.SendEmail(ctx, to, subject, body)
}

func statusLabel(status order.Status) string {
	switch status {
	case order.Accepted:
		return "prise en charge"
	case order.PickedUp:
		return "recuperee"
	case order.InTransit:
		return "en cours de livraison"
	case order.Delivered:
		return "livree"
	case order.Cancelled:
		return "annulee"
	default:
		return "en attente"
	}
}
