// Package ports defines repository interfaces for the drone fleet domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dronefleet/internal/core/domain/model/drone"
)

// DroneRepository defines the persistence contract for drone aggregates.
// A drone is always stored and loaded together with its attachments and
// their medications.
type DroneRepository interface {
	// Add persists a newly registered drone.
	// Returns *errs.ObjectAlreadyExistsError when the serial is taken.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists the drone row and upserts every attachment it holds.
	// Attachments are never deleted. Returns *errs.ObjectNotFoundError when
	// the drone does not exist.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone by serial with its complete attachment graph.
	Get(ctx context.Context, serial string) (*drone.Drone, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends. Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, serial string) (*drone.Drone, error)

	// Exists reports whether a drone with the serial is registered.
	Exists(ctx context.Context, serial string) (bool, error)

	// All retrieves every registered drone ordered by serial.
	//
	// Example:
	//   drones, err := repo.All(ctx)
	//   if err != nil {
	//       return fmt.Errorf("failed to list drones: %w", err)
	//   }
	//   for _, d := range drones {
	//       fmt.Printf("%s: %d%%\n", d.Serial(), d.Battery())
	//   }
	All(ctx context.Context) ([]*drone.Drone, error)
}
