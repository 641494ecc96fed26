package courier

import (
	"errors"
	"time"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, availability and
// live position.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name and phone
//   - Only Active couriers may accept orders
//   - Reporting a position marks the courier online and stamps last-seen
//   - A courier with no reported position has a nil Position
type Courier struct {
	id         kernel.UUID
	name       string
	phone      string
	email      string
	status     Status
	vehicle    VehicleType
	position   *kernel.GeoPoint
	online     bool
	lastSeenAt *time.Time

	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in Inactive status with no reported
// position. Activation is an administrative action done separately.
func NewCourier(id kernel.UUID, name, phone, email string, vehicle VehicleType) (*Courier, error) {
	courier := &Courier{
		status: StatusInactive,
		guard:  guard.NewConstructorGuard(),
	}

	if vehicle == VehicleUnknown {
		vehicle = VehicleMoto
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	courier.email = email
	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its availability state at the time of persistence.
func RestoreCourier(
	id kernel.UUID,
	name, phone, email string,
	status Status,
	vehicle VehicleType,
	position *kernel.GeoPoint,
	online bool,
	lastSeenAt *time.Time,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setStatus(status),
		courier.setVehicle(vehicle),
		courier.setPosition(position),
	); err != nil {
		return nil, err
	}

	courier.email = email
	courier.online = online
	courier.lastSeenAt = lastSeenAt
	return courier, nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's phone number.
func (c *Courier) Phone() string {
	return c.phone
}

// Email returns the courier's email, possibly empty.
func (c *Courier) Email() string {
	return c.email
}

// Status returns the employment status of the courier.
func (c *Courier) Status() Status {
	return c.status
}

// Vehicle returns the courier's vehicle type.
func (c *Courier) Vehicle() VehicleType {
	return c.vehicle
}

// Position returns the last reported position, nil when the courier
// never reported one.
func (c *Courier) Position() *kernel.GeoPoint {
	return c.position
}

// IsOnline reports whether the courier is currently connected.
func (c *Courier) IsOnline() bool {
	return c.online
}

// LastSeenAt returns when the courier last reported a position, nil when
// they never did.
func (c *Courier) LastSeenAt() *time.Time {
	return c.lastSeenAt
}

// CanAcceptOrders reports whether the courier is allowed to claim orders.
func (c *Courier) CanAcceptOrders() bool {
	return c.status.CanAcceptOrders()
}

// Activate moves the courier to Active status.
func (c *Courier) Activate() {
	c.status = StatusActive
}

// Suspend bars the courier from the platform.
func (c *Courier) Suspend() {
	c.status = StatusSuspended
}

// SetOnLeave marks the courier as temporarily away.
func (c *Courier) SetOnLeave() {
	c.status = StatusOnLeave
}

// MoveTo records a position report: it updates the live position, marks
// the courier online and stamps last-seen with the report time.
func (c *Courier) MoveTo(position kernel.GeoPoint, at time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("report time")
	}

	c.position = &position
	c.online = true
	c.lastSeenAt = &at
	return nil
}

// MarkOffline flags the courier as disconnected. The last known position
// and last-seen timestamp are kept for dispatch history.
func (c *Courier) MarkOffline() {
	c.online = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *Courier) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

func (c *Courier) setPosition(position *kernel.GeoPoint) error {
	if position == nil {
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
