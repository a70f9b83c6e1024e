package queries

import (
	"errors"
	"time"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrGetDroneLoadsQueryIsNotConstructed = errors.New(
	"GetDroneLoadsQuery must be created via NewGetDroneLoadsQuery constructor",
)

// GetDroneLoadsQuery retrieves every item ever attached to one drone,
// delivered ones included.
type GetDroneLoadsQuery struct { //nolint:recvcheck //using for validation
	serial string

	guard guard.ConstructorGuard
}

func NewGetDroneLoadsQuery(serial string) (GetDroneLoadsQuery, error) {
	q := GetDroneLoadsQuery{guard: guard.NewConstructorGuard()}
	if serial == "" {
		return GetDroneLoadsQuery{}, errs.NewValueIsRequiredError("serial")
	}
	q.serial = serial
	return q, nil
}

func (q GetDroneLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneLoadsQueryIsNotConstructed)
}

func (q GetDroneLoadsQuery) Serial() string { return q.serial }

// MedicationView is the medication detail inside a load.
type MedicationView struct {
	ID        kernel.UUID
	Name      string
	Weight    int
	Code      string
	Image     string
	CreatedAt time.Time
}

// DroneLoad is one attachment with its medication.
type DroneLoad struct {
	ID             kernel.UUID
	Medication     MedicationView
	PickupNumber   string
	DeliveryNumber string
	Address        string
	Status         drone.State
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
