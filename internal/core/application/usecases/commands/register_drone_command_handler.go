package commands

import (
	"context"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
)

// RegisterDroneCommandHandler adds a drone after checking the serial is free.
// The store's primary key still guards against a concurrent duplicate.
type RegisterDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewRegisterDroneCommandHandler(uowFactory DroneUoWFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the drone and returns it as stored.
func (h RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := drone.NewDrone(cmd.Serial(), cmd.Model(), cmd.WeightLimit(), cmd.Battery(), cmd.State())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DroneRepository()

	exists, err := repo.Exists(ctx, cmd.Serial())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("drone", cmd.Serial())
	}

	if err = repo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
