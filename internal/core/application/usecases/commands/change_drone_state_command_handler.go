package commands

import (
	"context"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/keylock"
)

// ChangeDroneStateCommandHandler applies manual lifecycle transitions. It
// shares the loading engine's key lock so a transition never interleaves with
// a load on the same drone.
type ChangeDroneStateCommandHandler struct {
	uowFactory DroneUoWFactory
	locks      *keylock.KeyLock
}

func NewChangeDroneStateCommandHandler(uowFactory DroneUoWFactory, locks *keylock.KeyLock) ChangeDroneStateCommandHandler {
	if locks == nil {
		locks = keylock.New()
	}
	return ChangeDroneStateCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle returns the drone after the transition, or *drone.InvalidStateError
// when the state machine forbids it.
func (h ChangeDroneStateCommandHandler) Handle(ctx context.Context, cmd ChangeDroneStateCommand) (*drone.Drone, error) {
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

	if err = d.ChangeState(cmd.Target()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
