package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
)

const seedFleetSize = 10

// DroneRegistrar registers one drone.
type DroneRegistrar interface {
	Handle(ctx context.Context, cmd commands.RegisterDroneCommand) (*drone.Drone, error)
}

// FleetSeeder tops the fleet up to DRONE-001..DRONE-010 for local runs.
type FleetSeeder struct {
	registrar DroneRegistrar
	logger    *slog.Logger
}

func NewFleetSeeder(registrar DroneRegistrar, logger *slog.Logger) FleetSeeder {
	return FleetSeeder{registrar: registrar, logger: logger.With("component", "seeder")}
}

// Seed registers the missing seed drones and returns how many it created.
func (s FleetSeeder) Seed(ctx context.Context) (int, error) {
	models := drone.Models()
	created := 0

	for i := 1; i <= seedFleetSize; i++ {
		serial := fmt.Sprintf("DRONE-%03d", i)
		battery := min(30+(i*5)%70, drone.MaxBattery)
		model := models[(i-1)%len(models)].String()

		cmd, err := commands.NewRegisterDroneCommand(serial, model, min(100+(i%5)*80, drone.MaxWeightLimit), &battery, nil)
		if err != nil {
			return created, err
		}

		_, err = s.registrar.Handle(ctx, cmd)
		switch {
		case errors.Is(err, errs.ErrObjectAlreadyExists):
			continue
		case err != nil:
			return created, fmt.Errorf("seed %s: %w", serial, err)
		}
		created++
	}

	s.logger.Info("fleet seeded", "created", created)
	return created, nil
}
