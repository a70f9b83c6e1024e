package commands

import (
	"context"
	"errors"
	"log/slog"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/keylock"
)

// LoadDroneCommandHandler is the loading engine. It admits or rejects a load
// against the drone's committed state and writes the whole batch in one
// transaction.
//
// Per serial, loads are serialized twice: an in-process key lock keeps
// goroutines of this instance in line, and GetForUpdate row-locks the drone so
// other instances sharing the database wait too.
//
// Example:
//
//	handler := NewLoadDroneCommandHandler(uowFactory, locks, logger)
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, drone.ErrCapacityExceeded):
//	    // rejected, drone is now LOADED
//	case err != nil:
//	    return err
//	}
type LoadDroneCommandHandler struct {
	uowFactory DroneUoWFactory
	locks      *keylock.KeyLock
	logger     *slog.Logger
}

// NewLoadDroneCommandHandler creates the handler. Handlers that mutate drones
// must share one KeyLock; a nil locks gets a private one.
func NewLoadDroneCommandHandler(
	uowFactory DroneUoWFactory,
	locks *keylock.KeyLock,
	logger *slog.Logger,
) LoadDroneCommandHandler {
	if locks == nil {
		locks = keylock.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return LoadDroneCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		logger:     logger.With("component", "loading-engine"),
	}
}

// Handle runs the admission gates of drone.Load and, when they pass, persists
// every new attachment and returns the drone reloaded after commit.
//
// When the capacity gates reject the request the drone has latched LOADED;
// that latch is committed before the rejection is returned.
func (h LoadDroneCommandHandler) Handle(ctx context.Context, cmd LoadDroneCommand) (*drone.Drone, error) {
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

	repo := uow.DroneRepository()

	d, err := repo.GetForUpdate(ctx, cmd.Serial())
	if err != nil {
		return nil, err
	}

	added, loadErr := d.Load(cmd.Shipments())
	if loadErr != nil {
		if !errors.Is(loadErr, drone.ErrCapacityReached) && !errors.Is(loadErr, drone.ErrCapacityExceeded) {
			return nil, loadErr
		}
		if err = repo.Update(ctx, d); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		h.logger.Info("drone latched loaded", "serial", d.Serial(), "reason", loadErr.Error())
		return nil, loadErr
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("drone loaded",
		"serial", d.Serial(),
		"items", len(added),
		"grams", cmd.Weight(),
		"state", d.State().String(),
	)

	return uow.DroneRepository().Get(ctx, cmd.Serial())
}
