package order

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

// ErrSenderIsNotConstructed is returned when using an improperly initialized Sender.
var ErrSenderIsNotConstructed = errors.New("Sender must be created via NewSender constructor")

// ErrRecipientIsNotConstructed is returned when using an improperly initialized Recipient.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Sender is the contact snapshot of the person who placed the order,
// frozen at creation time. Account profile edits after that do not touch
// existing orders.
type Sender struct {
	name           string
	phone          string
	email          string
	alternatePhone string
	pickupAddress  string
	pickupGeo      *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSender creates a Sender snapshot. Name and phone are required, the
// rest is optional: a nil pickupGeo means the courier calls the sender to
// arrange the pickup.
func NewSender(name, phone, email, alternatePhone, pickupAddress string, pickupGeo *kernel.GeoPoint) (Sender, error) {
	if name == "" {
		return Sender{}, errs.NewValueIsRequiredError("sender name")
	}
	if phone == "" {
		return Sender{}, errs.NewValueIsRequiredError("sender phone")
	}
	if pickupGeo != nil {
		if err := pickupGeo.Validate(); err != nil {
			return Sender{}, err
		}
	}

	return Sender{
		name:           name,
		phone:          phone,
		email:          email,
		alternatePhone: alternatePhone,
		pickupAddress:  pickupAddress,
		pickupGeo:      pickupGeo,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Sender was created through NewSender.
func (s Sender) Validate() error {
	return s.guard.Validate(ErrSenderIsNotConstructed)
}

// Name returns the sender's name.
func (s Sender) Name() string { return s.name }

// Phone returns the sender's phone number.
func (s Sender) Phone() string { return s.phone }

// Email returns the sender's email, possibly empty.
func (s Sender) Email() string { return s.email }

// AlternatePhone returns the backup contact number, possibly empty.
func (s Sender) AlternatePhone() string { return s.alternatePhone }

// PickupAddress returns the pickup address text, possibly empty.
func (s Sender) PickupAddress() string { return s.pickupAddress }

// PickupGeo returns the pickup coordinates, nil when the sender gave none.
func (s Sender) PickupGeo() *kernel.GeoPoint { return s.pickupGeo }

// Recipient is the delivery destination. Unlike the sender side, the
// address and coordinates are mandatory: tracking and ETA depend on them.
type Recipient struct {
	name    string
	phone   string
	email   string
	address string
	geo     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRecipient creates a Recipient. Address and valid coordinates are
// required; name, phone and email are optional contact details.
func NewRecipient(name, phone, email, address string, geo kernel.GeoPoint) (Recipient, error) {
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient address")
	}
	if err := geo.Validate(); err != nil {
		return Recipient{}, err
	}

	return Recipient{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		geo:     geo,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Recipient was created through NewRecipient.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's name, possibly empty.
func (r Recipient) Name() string { return r.name }

// Phone returns the recipient's phone number, possibly empty.
func (r Recipient) Phone() string { return r.phone }

// Email returns the recipient's email, possibly empty.
func (r Recipient) Email() string { return r.email }

// Address returns the delivery address text.
func (r Recipient) Address() string { return r.address }

// Geo returns the delivery coordinates.
func (r Recipient) Geo() kernel.GeoPoint { return r.geo }
