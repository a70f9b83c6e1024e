package commands

import (
	"context"

	"dronefleet/internal/core/domain/model/batterylog"
)

// SampleBatteriesCommandHandler snapshots the current battery of every drone
// into the battery log with description "N/A".
//
// Example:
//
//	handler := NewSampleBatteriesCommandHandler(uowFactory)
//	n, err := handler.Handle(ctx, NewSampleBatteriesCommand())
//	if err != nil {
//	    logger.Error("battery sampling failed", "error", err)
//	}
type SampleBatteriesCommandHandler struct {
	uowFactory UoWFactory
}

func NewSampleBatteriesCommandHandler(uowFactory UoWFactory) SampleBatteriesCommandHandler {
	return SampleBatteriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many entries were written.
func (h SampleBatteriesCommandHandler) Handle(ctx context.Context, cmd SampleBatteriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drones, err := uow.DroneRepository().All(ctx)
	if err != nil {
		return 0, err
	}

	entries := make([]*batterylog.Entry, 0, len(drones))
	for _, d := range drones {
		entry, err := batterylog.NewEntry(d.Serial(), d.Battery(), batterylog.DefaultDescription)
		if err != nil {
			return 0, err
		}
		entries = append(entries, entry)
	}

	if err = uow.BatteryLogRepository().AddBatch(ctx, entries); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(entries), nil
}
