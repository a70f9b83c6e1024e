package commands

import (
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrReportBatteryCommandIsNotConstructed = errors.New(
	"ReportBatteryCommand must be created via NewReportBatteryCommand constructor",
)

// ReportBatteryCommand carries a battery reading pushed by a drone.
type ReportBatteryCommand struct { //nolint:recvcheck //using for validation
	serial string
	level  int

	guard guard.ConstructorGuard
}

func NewReportBatteryCommand(serial string, level int) (ReportBatteryCommand, error) {
	cmd := ReportBatteryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSerial(serial),
		cmd.setLevel(level),
	); err != nil {
		return ReportBatteryCommand{}, err
	}

	return cmd, nil
}

func (c ReportBatteryCommand) Validate() error {
	return c.guard.Validate(ErrReportBatteryCommandIsNotConstructed)
}

func (c ReportBatteryCommand) Serial() string { return c.serial }
func (c ReportBatteryCommand) Level() int     { return c.level }

func (c *ReportBatteryCommand) setSerial(serial string) error {
	if serial == "" {
		return errs.NewValueIsRequiredError("serial")
	}
	c.serial = serial
	return nil
}

func (c *ReportBatteryCommand) setLevel(level int) error {
	if level < 0 || level > drone.MaxBattery {
		return errs.NewValueIsOutOfRangeError("battery", level, 0, drone.MaxBattery)
	}
	c.level = level
	return nil
}
