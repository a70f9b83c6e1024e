package commands

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrSampleBatteriesCommandIsNotConstructed = errors.New(
	"SampleBatteriesCommand must be created via NewSampleBatteriesCommand constructor",
)

// SampleBatteriesCommand asks for one battery log entry per registered drone.
type SampleBatteriesCommand struct {
	guard guard.ConstructorGuard
}

func NewSampleBatteriesCommand() SampleBatteriesCommand {
	return SampleBatteriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c SampleBatteriesCommand) Validate() error {
	return c.guard.Validate(ErrSampleBatteriesCommandIsNotConstructed)
}
