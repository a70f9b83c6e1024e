package commands

import (
	"context"

	"dronefleet/internal/core/domain/model/batterylog"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/keylock"
)

// ReportedDescription marks battery log entries written from a reported reading.
const ReportedDescription = "reported"

// ReportBatteryCommandHandler stores a new battery reading on the drone and
// appends it to the battery log in the same transaction.
type ReportBatteryCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.KeyLock
}

func NewReportBatteryCommandHandler(uowFactory UoWFactory, locks *keylock.KeyLock) ReportBatteryCommandHandler {
	if locks == nil {
		locks = keylock.New()
	}
	return ReportBatteryCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

func (h ReportBatteryCommandHandler) Handle(ctx context.Context, cmd ReportBatteryCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.Serial())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	logRepo := uow.BatteryLogRepository()

	d, err := droneRepo.GetForUpdate(ctx, cmd.Serial())
	if err != nil {
		return nil, err
	}

	if err = d.ReportBattery(cmd.Level()); err != nil {
		return nil, err
	}

	entry, err := batterylog.NewEntry(d.Serial(), d.Battery(), ReportedDescription)
	if err != nil {
		return nil, err
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = logRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
