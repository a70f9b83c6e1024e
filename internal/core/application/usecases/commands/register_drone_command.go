package commands

import (
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrRegisterDroneCommandIsNotConstructed = errors.New(
	"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor",
)

// RegisterDroneCommand represents a request to add a drone to the fleet.
// Battery defaults to 100 and state to IDLE when not supplied.
//
// Example:
//
//	cmd, err := NewRegisterDroneCommand("DRONE-011", "Lightweight", 200, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type RegisterDroneCommand struct { //nolint:recvcheck //using for validation
	serial      string
	model       drone.Model
	weightLimit int
	battery     int
	state       drone.State

	guard guard.ConstructorGuard
}

// NewRegisterDroneCommand parses and checks the registration input. Range
// checks on limit and battery are left to the drone aggregate.
func NewRegisterDroneCommand(
	serial, model string,
	weightLimit int,
	battery *int,
	state *string,
) (RegisterDroneCommand, error) {
	cmd := RegisterDroneCommand{
		battery: drone.DefaultBattery,
		state:   drone.Idle,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSerial(serial),
		cmd.setModel(model),
		cmd.setWeightLimit(weightLimit),
		cmd.setBattery(battery),
		cmd.setState(state),
	); err != nil {
		return RegisterDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDroneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDroneCommandIsNotConstructed)
}

func (c RegisterDroneCommand) Serial() string     { return c.serial }
func (c RegisterDroneCommand) Model() drone.Model { return c.model }
func (c RegisterDroneCommand) WeightLimit() int   { return c.weightLimit }
func (c RegisterDroneCommand) Battery() int       { return c.battery }
func (c RegisterDroneCommand) State() drone.State { return c.state }

func (c *RegisterDroneCommand) setSerial(serial string) error {
	if serial == "" {
		return errs.NewValueIsRequiredError("serial")
	}
	c.serial = serial
	return nil
}

func (c *RegisterDroneCommand) setModel(model string) error {
	m := drone.Model(model)
	if err := m.Validate(); err != nil {
		return err
	}
	c.model = m
	return nil
}

func (c *RegisterDroneCommand) setWeightLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsOutOfRangeError("weightLimit", limit, 1, drone.MaxWeightLimit)
	}
	c.weightLimit = limit
	return nil
}

func (c *RegisterDroneCommand) setBattery(battery *int) error {
	if battery == nil {
		return nil
	}
	c.battery = *battery
	return nil
}

func (c *RegisterDroneCommand) setState(state *string) error {
	if state == nil || *state == "" {
		return nil
	}
	s, err := drone.ParseState(*state)
	if err != nil {
		return err
	}
	c.state = s
	return nil
}
