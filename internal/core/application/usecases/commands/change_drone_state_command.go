package commands

import (
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrChangeDroneStateCommandIsNotConstructed = errors.New(
	"ChangeDroneStateCommand must be created via NewChangeDroneStateCommand constructor",
)

// ChangeDroneStateCommand moves a drone along its delivery lifecycle.
type ChangeDroneStateCommand struct { //nolint:recvcheck //using for validation
	serial string
	target drone.State

	guard guard.ConstructorGuard
}

func NewChangeDroneStateCommand(serial, target string) (ChangeDroneStateCommand, error) {
	cmd := ChangeDroneStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSerial(serial),
		cmd.setTarget(target),
	); err != nil {
		return ChangeDroneStateCommand{}, err
	}

	return cmd, nil
}

func (c ChangeDroneStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeDroneStateCommandIsNotConstructed)
}

func (c ChangeDroneStateCommand) Serial() string      { return c.serial }
func (c ChangeDroneStateCommand) Target() drone.State { return c.target }

func (c *ChangeDroneStateCommand) setSerial(serial string) error {
	if serial == "" {
		return errs.NewValueIsRequiredError("serial")
	}
	c.serial = serial
	return nil
}

func (c *ChangeDroneStateCommand) setTarget(target string) error {
	if target == "" {
		return errs.NewValueIsRequiredError("state")
	}
	s, err := drone.ParseState(target)
	if err != nil {
		return err
	}
	c.target = s
	return nil
}
