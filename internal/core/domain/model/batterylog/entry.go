// Package batterylog models the append-only battery history of the fleet.
package batterylog

import (
	"errors"
	"time"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

const (
	// DefaultDescription is written by the periodic sampler.
	DefaultDescription = "N/A"

	maxDescriptionLength = 100
	maxBatteryLevel      = 100
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable battery observation of a drone.
type Entry struct {
	id           kernel.UUID
	droneSerial  string
	batteryLevel int
	description  string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewEntry records the battery level observed now.
func NewEntry(droneSerial string, batteryLevel int, description string) (*Entry, error) {
	return newEntry(kernel.NewUUID(), droneSerial, batteryLevel, description, time.Now().UTC())
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(id kernel.UUID, droneSerial string, batteryLevel int, description string, createdAt time.Time) (*Entry, error) {
	return newEntry(id, droneSerial, batteryLevel, description, createdAt)
}

func newEntry(id kernel.UUID, droneSerial string, batteryLevel int, description string, createdAt time.Time) (*Entry, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if droneSerial == "" {
		errList = append(errList, errs.NewValueIsRequiredError("droneSerial"))
	}
	if batteryLevel < 0 || batteryLevel > maxBatteryLevel {
		errList = append(errList, errs.NewValueIsOutOfRangeError("batteryLevel", batteryLevel, 0, maxBatteryLevel))
	}
	if len(description) > maxDescriptionLength {
		errList = append(errList,
			errs.NewValueIsOutOfRangeError("description length", len(description), 0, maxDescriptionLength))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Entry{
		id:           id,
		droneSerial:  droneSerial,
		batteryLevel: batteryLevel,
		description:  description,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (e *Entry) ID() kernel.UUID      { return e.id }
func (e *Entry) DroneSerial() string  { return e.droneSerial }
func (e *Entry) BatteryLevel() int    { return e.batteryLevel }
func (e *Entry) Description() string  { return e.description }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}
