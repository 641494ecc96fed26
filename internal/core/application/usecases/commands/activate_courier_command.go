package commands

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

var ErrActivateCourierCommandIsNotConstructed = errors.New(
	"ActivateCourierCommand must be created via NewActivateCourierCommand constructor",
)

// ActivateCourierCommand represents an operator's decision to let a
// registered courier start working.
type ActivateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewActivateCourierCommand creates a command to activate a courier account.
func NewActivateCourierCommand(courierID kernel.UUID) (ActivateCourierCommand, error) {
	activateCommand := ActivateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := activateCommand.setCourierID(courierID); err != nil {
		return ActivateCourierCommand{}, err
	}

	return activateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateCourierCommand) Validate() error {
	return c.guard.Validate(ErrActivateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier to activate.
func (c ActivateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ActivateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
